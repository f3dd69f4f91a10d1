package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/gpuinfo"
	"github.com/gogpu/gpuinfo/vulkan"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report which graphics APIs are usable without listing devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Backend:     %s\n", gpuinfo.Backend().Variant())
		fmt.Fprintf(out, "Registered:  %s\n", registered())
		fmt.Fprintf(out, "Vulkan:      %s\n", yesNo(vulkan.IsSupported()))
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "available"
	}
	return "not available"
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

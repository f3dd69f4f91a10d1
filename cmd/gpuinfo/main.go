// Command gpuinfo prints the GPUs visible to this machine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gogpu/gpuinfo"
)

// envFormat overrides the default of --format.
const envFormat = "GPUINFO_FORMAT"

var (
	flagFormat         string
	flagVerbose        bool
	flagBackendDetails bool
)

var rootCmd = &cobra.Command{
	Use:   "gpuinfo",
	Short: "List the GPUs visible to this machine",
	Long: `gpuinfo lists every GPU the platform graphics API reports, with its kind,
vendor, driver version and approximate VRAM.

macOS builds query Metal; other platforms load the Vulkan loader at runtime.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			gpuinfo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(flagFormat)
		if err != nil {
			return err
		}

		gpus, err := gpuinfo.RetrieveGPUInfo()
		if err != nil {
			if gpuinfo.IsNotSupported(err) {
				return fmt.Errorf("no supported graphics API found: %w", err)
			}
			return err
		}

		out := cmd.OutOrStdout()
		color := isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
		if err := render(out, gpus, format, color); err != nil {
			return err
		}
		if flagBackendDetails && format == formatText {
			return renderBackendDetails(out, color)
		}
		return nil
	},
}

func init() {
	def := os.Getenv(envFormat)
	if def == "" {
		def = string(formatText)
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log backend diagnostics to stderr")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", def, "output format: text, json, yaml or toml (env "+envFormat+")")
	rootCmd.Flags().BoolVar(&flagBackendDetails, "backend-details", false, "show backend-specific device properties (text format only)")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

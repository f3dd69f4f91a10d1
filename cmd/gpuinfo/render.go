package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gpuinfo"
	"github.com/gogpu/gpuinfo/metal"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
	formatTOML outputFormat = "toml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatJSON, formatYAML, formatTOML:
		return f, nil
	case "":
		return formatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", s)
	}
}

// tomlDocument wraps the list; a TOML document must be a table.
type tomlDocument struct {
	GPU []gpuinfo.GPU `toml:"gpu"`
}

func render(w io.Writer, gpus []gpuinfo.GPU, format outputFormat, color bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(gpus)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(gpus); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(tomlDocument{GPU: gpus})
	default:
		_, err := fmt.Fprintln(w, gpuTable(gpus, color))
		return err
	}
}

func formatVRAM(g gpuinfo.GPU) string {
	if !g.VRAMKnown() {
		return gpuinfo.Unknown
	}
	return humanize.IBytes(g.VRAMBytes())
}

func gpuTable(gpus []gpuinfo.GPU, color bool) string {
	rows := make([][]string, 0, len(gpus))
	for i, g := range gpus {
		rows = append(rows, []string{
			strconv.Itoa(i),
			g.Name,
			g.Kind.String(),
			g.Vendor,
			g.DriverVersion,
			formatVRAM(g),
		})
	}
	return newTable(color).
		Headers("#", "NAME", "KIND", "VENDOR", "DRIVER", "VRAM").
		Rows(rows...).
		String()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	plainStyle  = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(color bool) *table.Table {
	t := table.New()
	if !color {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return plainStyle })
	}
	return t.Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// renderBackendDetails prints the compiled-in backend and, where Metal is
// available, the Metal-only device properties.
func renderBackendDetails(w io.Writer, color bool) error {
	b := gpuinfo.Backend()
	if _, err := fmt.Fprintf(w, "\nBackend: %s (registered: %s)\n", b.Variant(), registered()); err != nil {
		return err
	}

	devices, err := metal.Enumerate()
	if err != nil {
		// Only the Metal backend has extra properties to show.
		return nil
	}
	_, err = fmt.Fprintln(w, metalTable(devices, color))
	return err
}

func registered() string {
	names := gpuinfo.Available()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func metalTable(devices []metal.GPU, color bool) string {
	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		tg := d.MaxThreadsPerThreadgroup
		rows = append(rows, []string{
			d.Name,
			d.Location.String(),
			strconv.FormatBool(d.HasUnifiedMemory),
			strconv.FormatBool(d.IsLowPower),
			strconv.FormatBool(d.IsHeadless),
			strconv.FormatBool(d.IsRemovable),
			fmt.Sprintf("%#x", d.RegistryID),
			fmt.Sprintf("%dx%dx%d", tg.Width, tg.Height, tg.Depth),
			humanize.IBytes(d.RecommendedMaxWorkingSet),
		})
	}
	return newTable(color).
		Headers("NAME", "LOCATION", "UNIFIED", "LOW POWER", "HEADLESS", "REMOVABLE", "REGISTRY ID", "MAX THREADS", "WORKING SET").
		Rows(rows...).
		String()
}

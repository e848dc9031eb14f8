package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tvtheme/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long: `List the bundled theme presets and the presets in the user themes
directory. A user preset with the same name as a bundled one replaces it.`,
	Example: `  tvtheme themes
  tvtheme themes --themes-dir ./presets`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

const tablePadding = 2

func runThemes(cmd *cobra.Command, args []string) error {
	presets := loader.ListPresets()

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		modified := "-"
		if !p.ModTime.IsZero() {
			modified = humanize.Time(p.ModTime)
		}
		source := p.Source
		if p.Overridden {
			source += " (overrides bundled)"
		}
		rows = append(rows, []string{p.Name, source, humanize.Bytes(uint64(p.Size)), modified})
	}

	if err := writeTable(os.Stdout, []string{"NAME", "SOURCE", "SIZE", "MODIFIED"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nuser themes: %s\n", loader.ThemesDir())
	fmt.Fprintf(os.Stdout, "default preset: %s\n", theme.DefaultPresetName)
	return nil
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

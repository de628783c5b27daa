package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Skufu/vitalrisk/internal/report"
	"github.com/Skufu/vitalrisk/internal/risk"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// now is replaced in tests.
var now = time.Now

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assess",
		Short:         "Rule-based health risk assessment",
		Long:          "assess scores a health profile into a risk tier with recommendations. Educational use only.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("format", "f", "pretty", "Output format: json, markdown or pretty")

	root.AddCommand(newProfileCmd())
	root.AddCommand(newExampleCmd())
	root.AddCommand(newExamplesCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "assess", version)
		},
	})
	return root
}

// writeResult prints an assessment in the format selected by --format.
func writeResult(cmd *cobra.Command, p risk.HealthProfile, r risk.RiskResult) error {
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return writeJSON(out, struct {
			Profile risk.HealthProfile `json:"profile"`
			Result  risk.RiskResult    `json:"result"`
		}{p, r})
	case "markdown":
		_, err := io.WriteString(out, report.Markdown(p, r, now()))
		return err
	case "pretty":
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		rendered, err := renderer.Render(report.Markdown(p, r, now()))
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		_, err = io.WriteString(out, rendered)
		return err
	default:
		return fmt.Errorf("unknown format %q (want json, markdown or pretty)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

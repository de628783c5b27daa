package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Skufu/vitalrisk/internal/report"
	"github.com/Skufu/vitalrisk/internal/risk"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "example <name>",
		Short:     "Assess one of the built-in example profiles",
		Args:      cobra.ExactArgs(1),
		ValidArgs: report.ExampleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, ok := report.LookupExample(args[0])
			if !ok {
				return fmt.Errorf("unknown example %q (available: %s)", args[0], strings.Join(report.ExampleNames(), ", "))
			}
			result, err := risk.Assess(ex.Profile)
			if err != nil {
				return err
			}
			return writeResult(cmd, ex.Profile, result)
		},
	}
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSCORE\tTIER\tPUBLISHED AS\tDESCRIPTION")
			for _, ex := range report.Examples() {
				result, err := risk.Assess(ex.Profile)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", ex.Name, result.Score, result.Tier, ex.SourceLabel, ex.Title)
			}
			return tw.Flush()
		},
	}
}

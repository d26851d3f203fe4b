package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-neuro/bands"
)

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the canonical frequency band definitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Band\tLow [Hz]\tHigh [Hz]\n"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(tw, "----\t--------\t---------\n"); err != nil {
				return err
			}
			for _, b := range bands.Canonical().Bands() {
				if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\n", b.Name, b.Low, b.High); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}

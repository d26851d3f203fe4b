package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-neuro/core"
	"github.com/cwbudde/algo-neuro/psd"
	"github.com/cwbudde/algo-neuro/sim"
)

func newFitCmd() *cobra.Command {
	var (
		seed     int64
		rate     float64
		duration float64
		exponent float64
		fitLow   float64
		fitHigh  float64
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Simulate a power-law signal and fit its spectral exponent back",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := sim.NewGeneratorWithOptions(
				[]core.ProcessorOption{core.WithSampleRate(rate)},
				sim.WithSeed(seed),
			)

			sig, err := g.Powerlaw(duration, exponent)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			log.Debug().Int("samples", sig.Len()).Msg("simulated")

			spectrum, err := psd.Periodogram(sig)
			if err != nil {
				return fmt.Errorf("spectral estimation failed: %w", err)
			}

			offset, fitted, err := psd.FitPowerlaw(psd.TrimRange(spectrum, fitLow, fitHigh))
			if err != nil {
				return fmt.Errorf("fit failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "requested exponent: %+.3f\n", exponent)
			fmt.Fprintf(out, "fitted exponent:    %+.3f (offset %.3f, fit range %g-%g Hz)\n",
				fitted, offset, fitLow, fitHigh)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 21, "random seed")
	cmd.Flags().Float64Var(&rate, "rate", 1000, "sample rate in Hz")
	cmd.Flags().Float64Var(&duration, "duration", 16, "signal duration in seconds")
	cmd.Flags().Float64Var(&exponent, "exponent", -1, "aperiodic exponent to simulate")
	cmd.Flags().Float64Var(&fitLow, "fit-low", 2, "lower bound of the fit range in Hz")
	cmd.Flags().Float64Var(&fitHigh, "fit-high", 200, "upper bound of the fit range in Hz")
	return cmd
}

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sipras/cmbspec/emission"
	"github.com/sipras/cmbspec/measure/bands"
)

func bandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Report the CMB peak, component crossovers, and dominance bands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := components()
			if err != nil {
				return err
			}

			peakFreq, peakValue, err := bands.Peak(cs.CMB)
			if err != nil {
				return err
			}

			wien, err := emission.PeakFrequency(cfg.Model.CMBTemp)
			if err != nil {
				return err
			}

			fmt.Printf("CMB peak: %.1f GHz on the grid (Wien law: %.1f GHz), %.3e W m^-2 Hz^-1 sr^-1\n",
				peakFreq/1e9, wien/1e9, peakValue)

			syncCMB, err := bands.Crossovers(cs.Synchrotron, cs.CMB)
			if err != nil {
				return err
			}

			cmbDust, err := bands.Crossovers(cs.CMB, cs.Dust)
			if err != nil {
				return err
			}

			printCrossovers("synchrotron/CMB", syncCMB)
			printCrossovers("CMB/dust", cmbDust)

			dominant, err := bands.Dominant(cs)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "From (GHz)\tTo (GHz)\tDominant")

			for _, b := range dominant {
				fmt.Fprintf(tw, "%.2f\t%.2f\t%s\n", b.Lo/1e9, b.Hi/1e9, b.Component)
			}

			return tw.Flush()
		},
	}
}

func printCrossovers(name string, freqs []float64) {
	if len(freqs) == 0 {
		fmt.Printf("%s: no crossover on this grid\n", name)
		return
	}

	fmt.Printf("%s crossover:", name)

	for _, f := range freqs {
		fmt.Printf(" %.2f GHz", f/1e9)
	}

	fmt.Println()
}

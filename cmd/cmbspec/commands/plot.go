package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sipras/cmbspec/render"
)

func plotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Write a log-log plot of the component curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := components()
			if err != nil {
				return err
			}

			if err := render.Plot(output, cs); err != nil {
				return err
			}

			log.Debug().Str("path", output).Msg("plot written")
			fmt.Printf("Plot saved to: %s\n", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "results/cmb_spectrum.png", "output image path (png, svg, pdf)")

	return cmd
}

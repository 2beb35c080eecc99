package commands

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sipras/cmbspec/render"
)

func csvCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the component curves as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := components()
			if err != nil {
				return err
			}

			if output == "" {
				return render.CSV(os.Stdout, cs)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}

			if err := render.CSV(f, cs); err != nil {
				f.Close()
				return err
			}

			if err := f.Close(); err != nil {
				return err
			}

			log.Info().Str("path", output).Int("points", cs.Total.Len()).Msg("csv written")

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

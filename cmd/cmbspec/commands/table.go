package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sipras/cmbspec/render"
)

func tableCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the component curves as a text table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := components()
			if err != nil {
				return err
			}

			return render.Table(os.Stdout, cs, rows)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 40, "maximum table rows, 0 for all grid points")

	return cmd
}

package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sipras/cmbspec/emission"
	"github.com/sipras/cmbspec/model"
)

// Table writes the component curves as an aligned text table. maxRows
// limits the output by sampling the grid evenly; zero or negative
// prints every point. The last column is the Rayleigh-Jeans brightness
// temperature of the total signal.
func Table(w io.Writer, cs model.Components, maxRows int) error {
	n := cs.Total.Len()

	stride := 1
	if maxRows > 0 && n > maxRows {
		stride = (n + maxRows - 1) / maxRows
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Freq (GHz)\tCMB\tSynchrotron\tDust\tTotal\tT_B (K)\t")

	for i := 0; i < n; i += stride {
		f := cs.Total.Freqs[i]

		tb, err := emission.BrightnessTemperature(f, cs.Total.Values[i])
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%.3f\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\t\n",
			f/1e9,
			cs.CMB.Values[i],
			cs.Synchrotron.Values[i],
			cs.Dust.Values[i],
			cs.Total.Values[i],
			tb,
		)
	}

	return tw.Flush()
}

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sipras/cmbspec/model"
)

var legendNames = map[string]string{
	model.LabelCMB:         "CMB (blackbody)",
	model.LabelSynchrotron: "Synchrotron",
	model.LabelDust:        "Thermal dust",
	model.LabelTotal:       "Total signal",
}

// Plot writes a log-log figure of the component curves to path. The
// image format follows the file extension (png, svg, pdf); the parent
// directory is created if missing.
func Plot(path string, cs model.Components) error {
	p := plot.New()
	p.Title.Text = "CMB spectrum with astrophysical foregrounds"
	p.X.Label.Text = "Frequency (GHz)"
	p.Y.Label.Text = "Spectral radiance (W m^-2 Hz^-1 sr^-1)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: 0}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, c := range cs.Curves() {
		xys := make(plotter.XYs, c.Len())
		for j := range xys {
			xys[j].X = c.Freqs[j] / 1e9
			xys[j].Y = c.Values[j]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("render: line for %q: %w", c.Label, err)
		}

		line.Color = plotutil.Color(i)
		if c.Label == model.LabelTotal {
			line.Width = vg.Points(2)
		}

		p.Add(line)

		name := legendNames[c.Label]
		if name == "" {
			name = c.Label
		}

		p.Legend.Add(name, line)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create output dir: %w", err)
		}
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save plot: %w", err)
	}

	return nil
}

package bands

import (
	"errors"
	"fmt"
	"math"

	"github.com/sipras/cmbspec/curve"
	"github.com/sipras/cmbspec/model"
)

// Errors returned by band analysis.
var (
	ErrEmptyCurve   = errors.New("bands: curve has no points")
	ErrGridMismatch = errors.New("bands: curves are not on the same grid")
)

// Peak returns the frequency and value of the located maximum of c.
func Peak(c curve.Curve) (freq, value float64, err error) {
	if c.Len() == 0 {
		return 0, 0, ErrEmptyCurve
	}

	value, idx := c.Max()

	return c.Freqs[idx], value, nil
}

// Crossovers returns the frequencies at which curves a and b cross,
// in increasing order. Crossing points between grid samples are
// interpolated linearly in log-frequency, which suits the multi-decade
// grids this model runs on.
func Crossovers(a, b curve.Curve) ([]float64, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %q has %d points, %q has %d", ErrGridMismatch, a.Label, a.Len(), b.Label, b.Len())
	}

	var crossings []float64

	prev := a.Values[0] - b.Values[0]

	for i := 1; i < a.Len(); i++ {
		if a.Freqs[i] != b.Freqs[i] {
			return nil, fmt.Errorf("%w: %q vs %q at index %d", ErrGridMismatch, a.Label, b.Label, i)
		}

		d := a.Values[i] - b.Values[i]

		switch {
		case d == 0:
			crossings = append(crossings, a.Freqs[i])
		case (prev < 0) != (d < 0) && prev != 0:
			t := prev / (prev - d)
			logLo := math.Log(a.Freqs[i-1])
			logHi := math.Log(a.Freqs[i])
			crossings = append(crossings, math.Exp(logLo+t*(logHi-logLo)))
		}

		prev = d
	}

	return crossings, nil
}

// Band is a contiguous frequency interval over which one component has
// the largest intensity.
type Band struct {
	Lo        float64 // Hz, inclusive
	Hi        float64 // Hz, inclusive
	Component string  // model curve label
}

// Dominant partitions the grid of cs into contiguous bands by the
// strongest of the three components at each sample. This is the
// quantitative form of the "which mechanism dominates which band"
// picture the model exists to draw.
func Dominant(cs model.Components) ([]Band, error) {
	curves := []curve.Curve{cs.CMB, cs.Synchrotron, cs.Dust}

	n := cs.CMB.Len()
	if n == 0 {
		return nil, ErrEmptyCurve
	}

	for _, c := range curves[1:] {
		if c.Len() != n {
			return nil, fmt.Errorf("%w: %q has %d points, want %d", ErrGridMismatch, c.Label, c.Len(), n)
		}
	}

	winner := func(i int) string {
		best := curves[0]
		for _, c := range curves[1:] {
			if c.Values[i] > best.Values[i] {
				best = c
			}
		}

		return best.Label
	}

	var out []Band

	current := Band{Lo: cs.CMB.Freqs[0], Hi: cs.CMB.Freqs[0], Component: winner(0)}

	for i := 1; i < n; i++ {
		w := winner(i)
		if w == current.Component {
			current.Hi = cs.CMB.Freqs[i]
			continue
		}

		out = append(out, current)
		current = Band{Lo: cs.CMB.Freqs[i], Hi: cs.CMB.Freqs[i], Component: w}
	}

	return append(out, current), nil
}

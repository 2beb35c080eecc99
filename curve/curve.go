package curve

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by curve operations.
var (
	ErrEmpty          = errors.New("curve: curve has no points")
	ErrLengthMismatch = errors.New("curve: frequency and value lengths differ")
	ErrGridMismatch   = errors.New("curve: curves are not on the same grid")
	ErrNoCurves       = errors.New("curve: no curves given")
)

// Curve is a sampled spectral curve: intensities in W m⁻² Hz⁻¹ sr⁻¹
// over a shared frequency grid in Hz.
type Curve struct {
	Label  string
	Freqs  []float64
	Values []float64
}

// Point is a single (frequency, intensity) sample.
type Point struct {
	Freq  float64
	Value float64
}

// New creates a labeled curve over freqs with the given values.
func New(label string, freqs, values []float64) (Curve, error) {
	c := Curve{Label: label, Freqs: freqs, Values: values}
	if err := c.validate(); err != nil {
		return Curve{}, err
	}

	return c, nil
}

func (c Curve) validate() error {
	if len(c.Freqs) == 0 {
		return ErrEmpty
	}

	if len(c.Freqs) != len(c.Values) {
		return fmt.Errorf("%w: %d frequencies, %d values", ErrLengthMismatch, len(c.Freqs), len(c.Values))
	}

	return nil
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Freqs) }

// Points returns the curve as a plain sequence of (frequency, intensity)
// pairs, the form consumed by presentation and serialization layers.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c.Freqs))
	for i := range pts {
		pts[i] = Point{Freq: c.Freqs[i], Value: c.Values[i]}
	}

	return pts
}

// Scale multiplies every intensity by factor in place and returns the
// curve for chaining.
func (c Curve) Scale(factor float64) Curve {
	vecmath.ScaleBlockInPlace(c.Values, factor)
	return c
}

// Max returns the largest intensity and its index. All model curves are
// non-negative, so the absolute-value scan locates the true maximum.
func (c Curve) Max() (value float64, index int) {
	if len(c.Values) == 0 {
		return 0, -1
	}

	value = vecmath.MaxAbs(c.Values)
	for i, v := range c.Values {
		if v == value {
			return value, i
		}
	}

	// Fallback scan, reached only if values carry mixed signs.
	index = 0
	value = c.Values[0]

	for i, v := range c.Values[1:] {
		if v > value {
			value = v
			index = i + 1
		}
	}

	return value, index
}

// Sum returns a labeled elementwise total of the given curves. All
// curves must share the same grid.
func Sum(label string, curves ...Curve) (Curve, error) {
	if len(curves) == 0 {
		return Curve{}, ErrNoCurves
	}

	first := curves[0]
	if err := first.validate(); err != nil {
		return Curve{}, err
	}

	total := Curve{
		Label:  label,
		Freqs:  first.Freqs,
		Values: make([]float64, first.Len()),
	}
	copy(total.Values, first.Values)

	for _, c := range curves[1:] {
		if err := c.validate(); err != nil {
			return Curve{}, err
		}

		if !sameGrid(first.Freqs, c.Freqs) {
			return Curve{}, fmt.Errorf("%w: %q vs %q", ErrGridMismatch, first.Label, c.Label)
		}

		vecmath.AddBlockInPlace(total.Values, c.Values)
	}

	return total, nil
}

func sameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

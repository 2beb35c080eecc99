package grid

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by grid construction.
var (
	ErrNonPositiveMin = errors.New("grid: minimum frequency must be positive")
	ErrBoundsOrder    = errors.New("grid: maximum frequency must exceed minimum")
	ErrTooFewPoints   = errors.New("grid: at least two points required")
	ErrUnknownSpacing = errors.New("grid: unknown spacing")
)

// Spacing selects how grid points are distributed between the bounds.
type Spacing int

const (
	// Linear spaces points uniformly in frequency.
	Linear Spacing = iota

	// Logarithmic spaces points uniformly in log-frequency. Preferred
	// for multi-decade ranges such as 1–1000 GHz.
	Logarithmic
)

// String returns the spacing name.
func (s Spacing) String() string {
	switch s {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing converts a spacing name to its Spacing value.
func ParseSpacing(name string) (Spacing, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "logarithmic", "log":
		return Logarithmic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpacing, name)
	}
}

// Generate produces points frequencies between min and max inclusive,
// strictly increasing, all positive. Both endpoints are pinned exactly;
// interior points are uniform steps in frequency (Linear) or in
// log-frequency (Logarithmic).
func Generate(min, max float64, points int, spacing Spacing) ([]float64, error) {
	if min <= 0 {
		return nil, ErrNonPositiveMin
	}

	if max <= min {
		return nil, ErrBoundsOrder
	}

	if points < 2 {
		return nil, ErrTooFewPoints
	}

	out := make([]float64, points)

	switch spacing {
	case Linear:
		step := (max - min) / float64(points-1)
		for i := range out {
			out[i] = min + float64(i)*step
		}

	case Logarithmic:
		logMin := math.Log(min)
		step := (math.Log(max) - logMin) / float64(points-1)

		for i := range out {
			out[i] = math.Exp(logMin + float64(i)*step)
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSpacing, spacing)
	}

	// Pin the endpoints against accumulated rounding.
	out[0] = min
	out[points-1] = max

	return out, nil
}

package model

import (
	"fmt"

	"github.com/sipras/cmbspec/curve"
	"github.com/sipras/cmbspec/emission"
)

// Component labels carried on evaluated curves.
const (
	LabelCMB         = "cmb"
	LabelSynchrotron = "synchrotron"
	LabelDust        = "dust"
	LabelTotal       = "total"
)

// Model evaluates the three-component sky model over frequency grids.
type Model struct {
	params Params
}

// Components holds the evaluated curves of one model run over a shared
// grid, plus their elementwise total.
type Components struct {
	CMB         curve.Curve
	Synchrotron curve.Curve
	Dust        curve.Curve
	Total       curve.Curve
}

// Curves returns the component curves in presentation order.
func (c Components) Curves() []curve.Curve {
	return []curve.Curve{c.CMB, c.Synchrotron, c.Dust, c.Total}
}

// New creates a model from the default parameters and options.
func New(opts ...Option) *Model {
	return &Model{params: ApplyOptions(opts...)}
}

// NewPeakRelative creates a model whose foreground amplitudes are set
// to fractions of the CMB peak radiance over freqs. This reproduces the
// normalization style of exploratory notebooks, where foreground levels
// are quoted relative to the CMB maximum rather than in absolute units.
func NewPeakRelative(freqs []float64, syncFraction, dustFraction float64, opts ...Option) (*Model, error) {
	if syncFraction < 0 || dustFraction < 0 {
		return nil, ErrNegativeAmplitude
	}

	m := New(opts...)

	cmb, err := m.CMB(freqs)
	if err != nil {
		return nil, err
	}

	peak, _ := cmb.Max()
	m.params.SyncAmplitude = peak * syncFraction
	m.params.DustAmplitude = peak * dustFraction

	return m, nil
}

// Params returns the model parameter set.
func (m *Model) Params() Params {
	return m.params
}

// CMB evaluates the Planck blackbody curve over freqs.
func (m *Model) CMB(freqs []float64) (curve.Curve, error) {
	if err := m.params.Validate(); err != nil {
		return curve.Curve{}, err
	}

	values := make([]float64, len(freqs))

	for i, f := range freqs {
		v, err := emission.Blackbody(f, m.params.CMBTemp)
		if err != nil {
			return curve.Curve{}, fmt.Errorf("model: cmb at %g Hz: %w", f, err)
		}

		values[i] = v
	}

	return curve.New(LabelCMB, freqs, values)
}

// Synchrotron evaluates the power-law curve over freqs.
func (m *Model) Synchrotron(freqs []float64) (curve.Curve, error) {
	if err := m.params.Validate(); err != nil {
		return curve.Curve{}, err
	}

	values := make([]float64, len(freqs))

	for i, f := range freqs {
		v, err := emission.Synchrotron(f, m.params.SyncIndex, m.params.SyncAmplitude, m.params.SyncRefFreq)
		if err != nil {
			return curve.Curve{}, fmt.Errorf("model: synchrotron at %g Hz: %w", f, err)
		}

		values[i] = v
	}

	return curve.New(LabelSynchrotron, freqs, values)
}

// Dust evaluates the modified blackbody curve over freqs.
func (m *Model) Dust(freqs []float64) (curve.Curve, error) {
	if err := m.params.Validate(); err != nil {
		return curve.Curve{}, err
	}

	values := make([]float64, len(freqs))

	for i, f := range freqs {
		v, err := emission.ThermalDust(f, m.params.DustIndex, m.params.DustTemp, m.params.DustAmplitude, m.params.DustRefFreq)
		if err != nil {
			return curve.Curve{}, fmt.Errorf("model: dust at %g Hz: %w", f, err)
		}

		values[i] = v
	}

	return curve.New(LabelDust, freqs, values)
}

// Components evaluates all three component curves and their elementwise
// total over freqs.
func (m *Model) Components(freqs []float64) (Components, error) {
	cmb, err := m.CMB(freqs)
	if err != nil {
		return Components{}, err
	}

	sync, err := m.Synchrotron(freqs)
	if err != nil {
		return Components{}, err
	}

	dust, err := m.Dust(freqs)
	if err != nil {
		return Components{}, err
	}

	total, err := curve.Sum(LabelTotal, cmb, sync, dust)
	if err != nil {
		return Components{}, err
	}

	return Components{CMB: cmb, Synchrotron: sync, Dust: dust, Total: total}, nil
}

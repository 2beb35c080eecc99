// Package model composes the emission laws into the three-component
// sky model: CMB blackbody, galactic synchrotron, and thermal dust,
// evaluated over a shared frequency grid.
//
// # Usage
//
//	freqs, _ := grid.Generate(1e9, 1e12, 1000, grid.Logarithmic)
//	m := model.New(model.WithDustTemp(18))
//	cs, err := m.Components(freqs)
//	// cs.CMB, cs.Synchrotron, cs.Dust, cs.Total
//
// Default amplitudes are illustrative absolute values sized so the
// three mechanisms trade dominance across the 1–1000 GHz range:
// synchrotron above the CMB below ~11 GHz, the CMB around its 160 GHz
// peak, dust at the high end. [NewPeakRelative] instead pins the
// foreground amplitudes to fractions of the CMB peak radiance.
package model

// Package emission evaluates the closed-form spectral radiance laws of
// the CMB sky model: the Planck blackbody spectrum, a power-law
// synchrotron spectrum, and a modified blackbody ("greybody") thermal
// dust spectrum.
//
// All functions are pure, take frequencies in Hz and temperatures in
// Kelvin, and return spectral radiance in W m⁻² Hz⁻¹ sr⁻¹. Invalid
// arguments (non-positive frequency or temperature, negative amplitude)
// fail with package sentinel errors before anything is computed.
//
// # Usage
//
//	b, err := emission.Blackbody(160.2e9, 2.725)
//	s, err := emission.Synchrotron(10e9, 2.9, 1e-20, 1e9)
//	d, err := emission.ThermalDust(500e9, 1.7, 20, 1e-21, 100e9)
//
// The Wien peak and Rayleigh-Jeans helpers support derived reporting:
//
//	peak, _ := emission.PeakFrequency(2.725) // ≈ 160.2 GHz
//	tb, _ := emission.BrightnessTemperature(30e9, s)
package emission

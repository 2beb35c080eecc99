package emission

import (
	"errors"
	"math"
)

// Errors returned by emission functions.
var (
	ErrNonPositiveFrequency   = errors.New("emission: frequency must be positive")
	ErrNonPositiveTemperature = errors.New("emission: temperature must be positive")
	ErrNegativeAmplitude      = errors.New("emission: amplitude must not be negative")
	ErrNonPositiveReference   = errors.New("emission: reference frequency must be positive")
)

// Blackbody evaluates Planck's law for a blackbody at temperature temp:
//
//	B(ν,T) = (2hν³/c²) · 1/(e^(hν/kT) − 1)
//
// freq is in Hz, temp in Kelvin. The result is spectral radiance in
// W m⁻² Hz⁻¹ sr⁻¹, strictly positive for all valid inputs within the
// representable range.
//
// Direct floating-point evaluation is stable over the frequency range
// this model targets (roughly 10⁸–10¹² Hz for Kelvin-scale
// temperatures); no small-argument series expansion is needed.
func Blackbody(freq, temp float64) (float64, error) {
	if freq <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	if temp <= 0 {
		return 0, ErrNonPositiveTemperature
	}

	x := PlanckConstant * freq / (BoltzmannConstant * temp)
	prefactor := 2 * PlanckConstant * freq * freq * freq / (SpeedOfLight * SpeedOfLight)

	return prefactor / (math.Exp(x) - 1), nil
}

// PeakFrequency returns the frequency in Hz at which B(ν,T) attains its
// maximum, from the Wien displacement law in frequency form:
//
//	ν_peak = α·kT/h, α ≈ 2.82144
//
// For the CMB at 2.725 K this is about 160.2 GHz.
func PeakFrequency(temp float64) (float64, error) {
	if temp <= 0 {
		return 0, ErrNonPositiveTemperature
	}

	return wienAlpha * BoltzmannConstant * temp / PlanckConstant, nil
}

// RayleighJeans evaluates the low-frequency (hν ≪ kT) limit of Planck's
// law:
//
//	B_RJ(ν,T) = 2ν²kT/c²
func RayleighJeans(freq, temp float64) (float64, error) {
	if freq <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	if temp <= 0 {
		return 0, ErrNonPositiveTemperature
	}

	return 2 * freq * freq * BoltzmannConstant * temp / (SpeedOfLight * SpeedOfLight), nil
}

// BrightnessTemperature inverts the Rayleigh-Jeans law, converting a
// spectral radiance at a given frequency into the equivalent RJ
// brightness temperature in Kelvin. This is the conventional unit
// bridge between radiance curves and radio-astronomy temperature units.
func BrightnessTemperature(freq, intensity float64) (float64, error) {
	if freq <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	return intensity * SpeedOfLight * SpeedOfLight / (2 * freq * freq * BoltzmannConstant), nil
}

package emission

import "math"

// Synchrotron evaluates a power-law synchrotron spectrum:
//
//	I(ν) = A · (ν/ν_ref)^(−index)
//
// For a positive spectral index the intensity falls with frequency,
// which is the behavior of galactic synchrotron emission. refFreq is
// the normalization point at which I(ν_ref) = A; 1 GHz is the
// conventional choice for synchrotron.
func Synchrotron(freq, index, amplitude, refFreq float64) (float64, error) {
	if freq <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	if refFreq <= 0 {
		return 0, ErrNonPositiveReference
	}

	if amplitude < 0 {
		return 0, ErrNegativeAmplitude
	}

	return amplitude * math.Pow(freq/refFreq, -index), nil
}

// ThermalDust evaluates a modified blackbody dust spectrum:
//
//	I(ν) = A · (ν/ν_ref)^index · B(ν, T_dust)
//
// The emissivity power law multiplies the Planck function of the dust
// grain temperature, so the spectrum rises faster than a pure blackbody
// below the dust peak. refFreq normalizes the emissivity term; 100 GHz
// is the reference used here.
func ThermalDust(freq, index, temp, amplitude, refFreq float64) (float64, error) {
	if freq <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	if refFreq <= 0 {
		return 0, ErrNonPositiveReference
	}

	if temp <= 0 {
		return 0, ErrNonPositiveTemperature
	}

	if amplitude < 0 {
		return 0, ErrNegativeAmplitude
	}

	planck, err := Blackbody(freq, temp)
	if err != nil {
		return 0, err
	}

	return amplitude * math.Pow(freq/refFreq, index) * planck, nil
}

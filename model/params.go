package model

import (
	"errors"
	"fmt"
)

// Default model parameters. The CMB temperature is the measured value;
// the foreground indices, temperatures, and amplitudes are illustrative
// choices sized so that synchrotron dominates the low-frequency band,
// the CMB its peak region, and dust the high-frequency band. They are
// tunable configuration, not fitted astrophysical results.
const (
	DefaultCMBTemp = 2.725 // K

	DefaultSyncIndex     = 2.9
	DefaultSyncAmplitude = 1e-16 // W m⁻² Hz⁻¹ sr⁻¹ at the 1 GHz reference
	DefaultSyncRefFreq   = 1e9   // Hz

	DefaultDustIndex     = 1.7
	DefaultDustTemp      = 20.0 // K
	DefaultDustAmplitude = 1e-4 // dimensionless emissivity scale at the reference
	DefaultDustRefFreq   = 1e11 // Hz
)

// Errors returned by parameter validation.
var (
	ErrNonPositiveCMBTemp  = errors.New("model: CMB temperature must be positive")
	ErrNonPositiveDustTemp = errors.New("model: dust temperature must be positive")
	ErrNonPositiveRefFreq  = errors.New("model: reference frequency must be positive")
	ErrNegativeAmplitude   = errors.New("model: amplitude must not be negative")
)

// Params holds the physical parameters of the three-component sky
// model.
//
// SyncAmplitude is the synchrotron radiance at SyncRefFreq.
// DustAmplitude is a dimensionless scale on the dust Planck function,
// applied at DustRefFreq (an emissivity/optical-depth stand-in).
type Params struct {
	CMBTemp float64 // K

	SyncIndex     float64 // power-law index, positive means falling with frequency
	SyncAmplitude float64 // W m⁻² Hz⁻¹ sr⁻¹ at SyncRefFreq
	SyncRefFreq   float64 // Hz

	DustIndex     float64 // emissivity index
	DustTemp      float64 // K
	DustAmplitude float64 // dimensionless scale at DustRefFreq
	DustRefFreq   float64 // Hz
}

// DefaultParams returns the illustrative default parameter set.
func DefaultParams() Params {
	return Params{
		CMBTemp:       DefaultCMBTemp,
		SyncIndex:     DefaultSyncIndex,
		SyncAmplitude: DefaultSyncAmplitude,
		SyncRefFreq:   DefaultSyncRefFreq,
		DustIndex:     DefaultDustIndex,
		DustTemp:      DefaultDustTemp,
		DustAmplitude: DefaultDustAmplitude,
		DustRefFreq:   DefaultDustRefFreq,
	}
}

// Validate checks the parameter invariants.
func (p Params) Validate() error {
	if p.CMBTemp <= 0 {
		return ErrNonPositiveCMBTemp
	}

	if p.DustTemp <= 0 {
		return ErrNonPositiveDustTemp
	}

	if p.SyncRefFreq <= 0 || p.DustRefFreq <= 0 {
		return fmt.Errorf("%w: sync %g Hz, dust %g Hz", ErrNonPositiveRefFreq, p.SyncRefFreq, p.DustRefFreq)
	}

	if p.SyncAmplitude < 0 || p.DustAmplitude < 0 {
		return ErrNegativeAmplitude
	}

	return nil
}

package model

// Option mutates the model parameters.
type Option func(*Params)

// WithCMBTemp sets the CMB blackbody temperature in Kelvin.
func WithCMBTemp(temp float64) Option {
	return func(p *Params) {
		p.CMBTemp = temp
	}
}

// WithSyncIndex sets the synchrotron spectral index.
func WithSyncIndex(index float64) Option {
	return func(p *Params) {
		p.SyncIndex = index
	}
}

// WithSyncAmplitude sets an absolute synchrotron amplitude at the
// reference frequency, disabling peak-relative normalization.
func WithSyncAmplitude(amplitude float64) Option {
	return func(p *Params) {
		p.SyncAmplitude = amplitude
	}
}

// WithSyncRefFreq sets the synchrotron normalization frequency in Hz.
func WithSyncRefFreq(freq float64) Option {
	return func(p *Params) {
		p.SyncRefFreq = freq
	}
}

// WithDustIndex sets the dust emissivity index.
func WithDustIndex(index float64) Option {
	return func(p *Params) {
		p.DustIndex = index
	}
}

// WithDustTemp sets the dust grain temperature in Kelvin.
func WithDustTemp(temp float64) Option {
	return func(p *Params) {
		p.DustTemp = temp
	}
}

// WithDustAmplitude sets an absolute dust amplitude scale, disabling
// peak-relative normalization.
func WithDustAmplitude(amplitude float64) Option {
	return func(p *Params) {
		p.DustAmplitude = amplitude
	}
}

// WithDustRefFreq sets the dust emissivity normalization frequency in Hz.
func WithDustRefFreq(freq float64) Option {
	return func(p *Params) {
		p.DustRefFreq = freq
	}
}

// WithParams replaces the whole parameter set.
func WithParams(params Params) Option {
	return func(p *Params) {
		*p = params
	}
}

// ApplyOptions applies zero or more options to the default parameters.
func ApplyOptions(opts ...Option) Params {
	p := DefaultParams()

	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return p
}

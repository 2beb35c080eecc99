// Package curve holds sampled spectral curves and the elementwise
// operations the model layer composes them with. Elementwise kernels
// delegate to algo-vecmath, which dispatches to SIMD implementations
// where available.
package curve

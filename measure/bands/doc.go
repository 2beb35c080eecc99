// Package bands derives band statistics from evaluated model curves:
// the located spectral peak, crossover frequencies between components,
// and the partition of a grid into dominance bands.
package bands

// Package grid constructs frequency sample grids for spectral model
// evaluation.
//
// Grids are ordered, strictly increasing sequences of positive
// frequencies in Hz, with linear or logarithmic point distribution:
//
//	freqs, err := grid.Generate(1e9, 1e12, 1000, grid.Logarithmic)
package grid

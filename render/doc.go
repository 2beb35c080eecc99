// Package render turns evaluated model components into presentation
// forms: an aligned text table, CSV, and a log-log plot image.
package render

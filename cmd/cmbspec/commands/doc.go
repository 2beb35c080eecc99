// Package commands implements the cmbspec CLI: model configuration
// through flags, a config file, and environment variables, with
// subcommands for tabular, CSV, plotted, and band-analysis output.
package commands

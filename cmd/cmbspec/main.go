package main

import (
	"os"

	"github.com/sipras/cmbspec/cmd/cmbspec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

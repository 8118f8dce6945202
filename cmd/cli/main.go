// Package main is the entry point for the portcharges CLI.
package main

import (
	"os"

	"port-charges/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the calcplot CLI.
package main

import (
	"os"

	"github.com/calcplot/calcplot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

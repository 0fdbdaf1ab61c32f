// Package main provides the entry point for the digikey CLI.
package main

import (
	"fmt"
	"os"

	"github.com/partstack/digikey-mcp/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

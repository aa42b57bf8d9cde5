// Package main provides the pname command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/pname/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

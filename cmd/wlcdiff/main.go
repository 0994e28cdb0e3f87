// Package main provides the wlcdiff CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/wlantools/wlcdiff/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

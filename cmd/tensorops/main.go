// Package main provides the tensorops CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

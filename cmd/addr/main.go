// Package main is the entry point for the addr CLI tool.
package main

import (
	"os"

	"github.com/makery/addressapp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main runs the fund manager: banks, savings objectives and the
// dashboard state behind an HTTP API.
package main

import (
	"os"

	"github.com/go-petr/fund-manager/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

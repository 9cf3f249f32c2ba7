package main

import (
	"os"

	"github.com/thimc/aed/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

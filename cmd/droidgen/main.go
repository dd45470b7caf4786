package main

import (
	"os"

	"github.com/droidgen/droidgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/tinne26/contfrac/cmd/contfrac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/portfolio-simple/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/dmitrymomot/translatable/cmd/translatable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

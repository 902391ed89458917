package main

import (
	"os"

	"github.com/go-drift/bindings/cmd/bindings/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/minilang/minilangc/cmd/minilangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

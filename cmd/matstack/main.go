package main

import (
	"os"

	"github.com/matstack/matstack/cmd/matstack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

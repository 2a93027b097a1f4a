package main

import (
	"os"

	"github.com/penwyp/go-logline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

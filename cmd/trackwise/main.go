package main

import (
	"os"

	"github.com/trackwise-dev/trackwise/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

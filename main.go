package main

import (
	"os"

	"github.com/sitewire/sitewire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

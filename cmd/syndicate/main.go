package main

import (
	"os"

	"vastgoed-sync/cmd/syndicate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/philosophercode/itinerary-rewind-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/soundprediction/ramify/cmd/ramify"
)

func main() {
	if err := ramify.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/s54http/s5plaunch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/hawarnekar/pyquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

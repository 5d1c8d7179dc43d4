package main

import (
	"os"

	"github.com/rizve/percepta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/msto63/halang/cmd/halang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

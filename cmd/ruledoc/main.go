package main

import (
	"os"

	"github.com/Gobd/ruledoc/cmd/ruledoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

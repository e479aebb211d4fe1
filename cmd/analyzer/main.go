package main

import (
	"os"

	"github.com/DjordjeVuckovic/faroese-analyzer/cmd/analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

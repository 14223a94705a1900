package main

import (
	"os"

	"github.com/davidvella/mergeset/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

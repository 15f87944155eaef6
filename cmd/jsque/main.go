package main

import (
	"os"

	"github.com/dsillman2000/jsque/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

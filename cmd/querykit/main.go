package main

import (
	"os"

	"github.com/blockberries/querykit/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/brequin/brequin/audit/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

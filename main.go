package main

import (
	"os"

	"github.com/voxmux/voxmux/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

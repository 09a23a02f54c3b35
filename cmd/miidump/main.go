package main

import (
	"os"

	"github.com/arloliu/mii/cmd/miidump/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Advestis/htmlmerger/cmd/htmlmerger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/lifeos-app/lifeos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/deanrtaylor1/gobayes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

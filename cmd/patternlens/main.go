package main

import (
	"fmt"
	"os"

	"github.com/patternlens/patternlens/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "patternlens:", err)
		os.Exit(1)
	}
}

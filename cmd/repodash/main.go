package main

import (
	"fmt"
	"os"

	"github.com/kk-code-lab/repodash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "repodash: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

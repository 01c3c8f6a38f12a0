// ABOUTME: Entry point for the newsreader command line tool
// ABOUTME: Resolves links, searches content and serves the HTTP surface

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

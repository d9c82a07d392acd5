// Command pourpath solves water-sort puzzles read from YAML files.
//
//	pourpath solve [--hard] [--max-expansions N] [--timeout D] [--workers N] FILE...
//	pourpath validate [--strict] FILE...
//
// Run "pourpath help solve" for the full flag list.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// feen - FEEN position notation CLI
//
// Usage:
//
//	feen validate [--strict] [file]   Validate records from a file or stdin
//	feen canon [file]                 Rewrite records in canonical form
//	feen inspect <record>             Describe one record's structure
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

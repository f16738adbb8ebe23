// Command bintree builds binary trees from the command line and renders them.
//
// Usage:
//
//	bintree fill ROOT [KEY...]     grow a complete tree by level-order insertion
//	bintree show FILE              render a tree from a YAML shape file
//	bintree check FILE             validate a YAML shape file
//
// Output formats (--format) are console, dot, html and yaml.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

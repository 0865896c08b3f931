// Command hypercubes builds lattice decomposition trees and queries them:
// index paths of coordinates, coordinates of index paths, block extents,
// allocation order and level dependencies.
//
// The layout comes from a YAML file (--layout) or a built-in preset
// (--preset lattice4d|line42).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

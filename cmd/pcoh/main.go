// SPDX-License-Identifier: MIT

// Command pcoh computes persistence diagrams of filtered complexes described
// in YAML job files, and inspects diagram files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pcoh:", err)
		os.Exit(1)
	}
}

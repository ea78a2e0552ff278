// Command periodic prints element and isotope data from the built-in
// catalog.
package main

import (
	"os"
)

func main() {
	cmd := NewCmdPeriodic("periodic", os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

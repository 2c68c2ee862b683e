// main is the entry point for the graphpoint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gpagano/graphpoint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

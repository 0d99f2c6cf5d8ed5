// Command gmsh-go is a small diagnostic tool for the gmsh wrapper: it
// reports versions, applies engine options from a config file, and runs a
// smoke mesh to verify the wrapper end to end.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

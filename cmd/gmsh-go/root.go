package main

import (
	"github.com/spf13/cobra"

	"github.com/rgmsh/gmsh-go/pkg/gmsh"
)

var (
	// flagConfig points at an optional YAML file with an `options:` list of
	// engine option assignments, applied before any engine work.
	flagConfig string

	// flagFake selects the in-memory engine instead of the native bindings.
	flagFake bool
)

var rootCmd = &cobra.Command{
	Use:     "gmsh-go",
	Short:   "Diagnostics for the gmsh Go wrapper",
	Version: gmsh.WrapperVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file with engine options to apply")
	rootCmd.PersistentFlags().BoolVar(&flagFake, "fake-engine", false, "use the in-memory engine instead of libgmsh")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(smokeCmd)
}

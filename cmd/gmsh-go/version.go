package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgmsh/gmsh-go/pkg/gmsh"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print wrapper and engine versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("wrapper: %s\n", gmsh.WrapperVersion())
		fmt.Printf("engine:  %s\n", gmsh.EngineVersion())
		return nil
	},
}

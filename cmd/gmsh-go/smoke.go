package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgmsh/gmsh-go/pkg/gmsh"
	"github.com/rgmsh/gmsh-go/pkg/gmsh/enginetest"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Build and mesh a unit square to verify the wrapper",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []gmsh.SessionOption
		if flagFake {
			opts = append(opts, gmsh.WithBackend(enginetest.New()))
		}

		sess, err := gmsh.NewSession(opts...)
		if err != nil {
			return err
		}
		defer sess.Close()

		if err := loadOptions(sess); err != nil {
			return err
		}

		model, err := sess.CreateGeoModel("smoke")
		if err != nil {
			return err
		}

		p1, err := model.AddPoint(0, 0, 0)
		if err != nil {
			return err
		}
		p2, err := model.AddPoint(1, 0, 0)
		if err != nil {
			return err
		}
		p3, err := model.AddPoint(1, 1, 0)
		if err != nil {
			return err
		}
		p4, err := model.AddPoint(0, 1, 0)
		if err != nil {
			return err
		}

		l1, err := model.AddLine(p1, p2)
		if err != nil {
			return err
		}
		l2, err := model.AddLine(p2, p3)
		if err != nil {
			return err
		}
		l3, err := model.AddLine(p3, p4)
		if err != nil {
			return err
		}
		l4, err := model.AddLine(p4, p1)
		if err != nil {
			return err
		}

		loop, err := model.AddCurveLoop(l1, l2, l3, l4)
		if err != nil {
			return err
		}
		surf, err := model.AddPlaneSurface(loop)
		if err != nil {
			return err
		}

		if err := model.GenerateMesh(2); err != nil {
			return err
		}

		fmt.Printf("meshed unit square, surface tag %d\n", surf.Raw())
		return nil
	},
}

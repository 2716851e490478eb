package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/hull"
	"github.com/katalvlaran/planar/pointio"
)

func newHullCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hull [file]",
		Short: "Print the convex hull (Graham's scan) as a point set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := a.loadPoints(args)
			if err != nil {
				return err
			}
			h, err := hull.GrahamScan(pts)
			if err != nil {
				return err
			}
			a.log.WithField("corners", len(h)).Info("hull computed")

			return pointio.Write(cmd.OutOrStdout(), h)
		},
	}
	addInputFlags(cmd.Flags())

	return cmd
}

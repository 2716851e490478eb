package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/pointio"
)

func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen N",
		Short: "Generate N reproducible random points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}
			opts := pointio.GenOptions{
				Seed:    a.v.GetUint32("seed"),
				MinX:    a.v.GetFloat64("min-x"),
				MinY:    a.v.GetFloat64("min-y"),
				Width:   a.v.GetFloat64("width"),
				Height:  a.v.GetFloat64("height"),
				Integer: a.v.GetBool("integer"),
			}
			pts, err := pointio.Generate(n, opts)
			if err != nil {
				return err
			}

			out := a.v.GetString("output")
			if out == "" || out == "-" {
				return pointio.Write(cmd.OutOrStdout(), pts)
			}
			if err = pointio.WriteFile(out, pts); err != nil {
				return err
			}
			a.log.WithField("file", out).Infof("wrote %d points", len(pts))

			return nil
		},
	}
	def := pointio.DefaultGenOptions()
	fs := cmd.Flags()
	fs.StringP("output", "o", "-", "file to write ('-' for stdout)")
	fs.Uint32("seed", def.Seed, "random seed (0 selects the default seed)")
	fs.Float64("min-x", def.MinX, "left edge of the sampling box")
	fs.Float64("min-y", def.MinY, "bottom edge of the sampling box")
	fs.Float64("width", def.Width, "width of the sampling box")
	fs.Float64("height", def.Height, "height of the sampling box")
	fs.Bool("integer", false, "snap coordinates to whole numbers")

	return cmd
}

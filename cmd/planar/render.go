package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/hull"
	"github.com/katalvlaran/planar/render"
)

func newRenderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the points, optionally with hull and closest pair, to a PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(args)
		},
	}
	fs := cmd.Flags()
	addInputFlags(fs)
	def := render.DefaultOptions()
	fs.StringP("output", "o", "points.png", "PNG file to write")
	fs.String("title", "", "chart title")
	fs.Bool("hull", false, "outline the convex hull")
	fs.Bool("pair", false, "highlight the closest pair")
	fs.Int("width", def.Width, "canvas width in pixels")
	fs.Int("height", def.Height, "canvas height in pixels")
	fs.Bool("legend", true, "draw the legend")

	return cmd
}

func (a *app) runRender(args []string) error {
	pts, err := a.loadPoints(args)
	if err != nil {
		return err
	}

	scene := render.Scene{Points: pts, Title: a.v.GetString("title")}
	if a.v.GetBool("hull") {
		if scene.Hull, err = hull.GrahamScan(pts); err != nil {
			return err
		}
	}
	if a.v.GetBool("pair") {
		pair, err := closest.DivideAndConquer(pts)
		switch {
		case errors.Is(err, closest.ErrInvalidInput):
			a.log.WithError(err).Warn("no closest pair to highlight")
		case err != nil:
			return err
		default:
			scene.Pair = &pair
		}
	}

	opts := render.DefaultOptions()
	opts.Width = a.v.GetInt("width")
	opts.Height = a.v.GetInt("height")
	opts.Legend = a.v.GetBool("legend")

	out := a.v.GetString("output")
	if err = render.SavePNG(out, scene, opts); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"file": out, "points": len(pts)}).Info("chart written")

	return nil
}

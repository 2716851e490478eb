package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/pointio"
)

var errNoInput = errors.New("no input: pass a file, '-' for stdin, or --random N")

// loadPoints reads the point set named by args[0] or generates one.
func (a *app) loadPoints(args []string) ([]geom.Point, error) {
	if n := a.v.GetInt("random"); n > 0 {
		opts := pointio.GenOptions{
			Seed:    a.v.GetUint32("seed"),
			Width:   a.v.GetFloat64("box"),
			Height:  a.v.GetFloat64("box"),
			Integer: a.v.GetBool("integer"),
		}
		a.log.WithFields(logrus.Fields{"n": n, "seed": opts.Seed}).Debug("generating points")

		return pointio.Generate(n, opts)
	}
	if len(args) == 0 {
		return nil, errNoInput
	}

	var (
		pts []geom.Point
		err error
	)
	if args[0] == "-" {
		pts, err = pointio.Read(os.Stdin)
	} else {
		pts, err = pointio.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"source": args[0], "points": len(pts)}).Debug("loaded points")

	return pts, nil
}

// Command planar finds closest pairs, convex hulls and renders point sets.
//
//	planar gen 1000 -o pts.yaml --seed 7
//	planar pair pts.yaml --verify
//	planar hull pts.yaml
//	planar render pts.yaml -o pts.png --hull --pair
//	planar serve --addr :8080
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("planar failed")
		os.Exit(1)
	}
}

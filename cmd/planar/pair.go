package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/geom"
)

func newPairCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair [file]",
		Short: "Find the closest pair of points",
		Long: `Find the two points with the smallest Euclidean distance.

The file may be YAML or JSON ({points: [...]} or a bare list); '-' reads stdin.
With --verify the answer is cross-checked against the brute-force finder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPair(cmd, args)
		},
	}
	fs := cmd.Flags()
	addInputFlags(fs)
	addClosestFlags(fs)
	fs.Bool("verify", false, "cross-check the distance against brute force")
	fs.Bool("json", false, "print the result as JSON")

	return cmd
}

// addClosestFlags registers the closest.Options knobs.
func addClosestFlags(fs *pflag.FlagSet) {
	fs.String("strategy", closest.StrategyRecursive.String(), "recursive, bruteforce-halves or bruteforce")
	fs.Int("window", closest.DefaultStripWindow, "strip successors compared per point (0 = no cap)")
	fs.Bool("parallel", false, "solve the top recursion levels concurrently")
	fs.Int("parallel-depth", defaultParallelDepth(), "recursion levels allowed to fork")
	fs.Int("parallel-cutoff", closest.DefaultParallelCutoff, "smallest sub-problem that forks")
}

// closestOptions assembles closest.Options from flags, env and config.
func (a *app) closestOptions() (closest.Options, error) {
	strategy, err := closest.ParseStrategy(a.v.GetString("strategy"))
	if err != nil {
		return closest.Options{}, err
	}

	return closest.Options{
		Strategy:       strategy,
		StripWindow:    a.v.GetInt("window"),
		Parallel:       a.v.GetBool("parallel"),
		ParallelDepth:  a.v.GetInt("parallel-depth"),
		ParallelCutoff: a.v.GetInt("parallel-cutoff"),
	}, nil
}

func (a *app) runPair(cmd *cobra.Command, args []string) error {
	pts, err := a.loadPoints(args)
	if err != nil {
		return err
	}
	opts, err := a.closestOptions()
	if err != nil {
		return err
	}

	start := time.Now()
	pair, err := closest.Find(pts, opts)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"points":   len(pts),
		"strategy": opts.Strategy,
		"elapsed":  time.Since(start),
	}).Info("closest pair found")

	if a.v.GetBool("verify") {
		if err = verifyPair(pts, pair); err != nil {
			return err
		}
		a.log.Info("verified against brute force")
	}

	if a.v.GetBool("json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(pair)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v [%d]\n%v [%d]\ndistance %g\n", pair.A, pair.I, pair.B, pair.J, pair.Distance)

	return err
}

// verifyPair compares pair against the brute-force oracle.
func verifyPair(pts []geom.Point, pair geom.Pair) error {
	want, err := closest.BruteForce(pts)
	if err != nil {
		return err
	}
	if want.Distance != pair.Distance {
		return fmt.Errorf("verification failed: brute force %g (%d,%d), got %g (%d,%d)",
			want.Distance, want.I, want.J, pair.Distance, pair.I, pair.J)
	}

	return nil
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pbnjay/memory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/internal/rest"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API and Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.closestOptions()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.log.WithFields(logrus.Fields{
				"memoryMiB":     memory.TotalMemory() / 1024 / 1024,
				"parallelDepth": opts.ParallelDepth,
			}).Info("starting planar server")

			srv := rest.NewServer(rest.Config{
				Addr:      a.v.GetString("addr"),
				Closest:   &opts,
				MaxPoints: a.v.GetInt("max-points"),
				Logger:    a.log,
			})

			return srv.Serve(ctx)
		},
	}
	fs := cmd.Flags()
	fs.String("addr", ":8080", "listen address")
	fs.Int("max-points", rest.DefaultMaxPoints, "largest accepted point set per request")
	addClosestFlags(fs)

	return cmd
}

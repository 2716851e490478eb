package main

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/klauspost/cpuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}
	a.v.SetEnvPrefix("PLANAR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "planar",
		Short:         "Closest pair, convex hull and scatter charts for 2-D point sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().String("config", "", "YAML config file providing defaults for any flag")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newPairCommand(a),
		newHullCommand(a),
		newRenderCommand(a),
		newGenCommand(a),
		newServeCommand(a),
	)

	return cmd
}

// setup binds flags, reads the optional config file and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		a.log.WithField("config", path).Debug("loaded config file")
	}

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log.SetLevel(level)

	return nil
}

// defaultParallelDepth forks enough levels to occupy every physical core.
func defaultParallelDepth() int {
	cores := cpuid.CPU.PhysicalCores
	if cores < 2 {
		return 0
	}

	return bits.Len(uint(cores - 1))
}

// addInputFlags registers the flags shared by commands that consume points.
func addInputFlags(fs *pflag.FlagSet) {
	fs.Int("random", 0, "ignore the file argument and generate this many random points")
	fs.Uint32("seed", 1, "seed for --random")
	fs.Bool("integer", false, "snap --random coordinates to whole numbers")
	fs.Float64("box", 1000, "edge length of the square sampled by --random")
}

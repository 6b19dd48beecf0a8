package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/simulate"
)

var (
	configPath string
	flagN      int
	flagSeed   int64
	flagSource string
)

var rootCmd = &cobra.Command{
	Use:          "percolate",
	Short:        "Site percolation on an N×N grid",
	SilenceUsage: true,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to percolate.yaml (default: $"+config.EnvConfigPath+" or ./"+config.DefaultFileName+")")
	pf.IntVarP(&flagN, "size", "n", 0, "Grid side length N")
	pf.Int64Var(&flagSeed, "seed", 0, "Random seed")
	pf.StringVar(&flagSource, "source", "", "Coordinate source: random or permutation")
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if configPath != "" {
		cfg, path, err = config.LoadFromPath(configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.Printf("Config loaded: %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.N = flagN
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("source") {
		cfg.Source = flagSource
	}

	return cfg, cfg.Validate()
}

// sourceFunc maps a config source name to its constructor.
func sourceFunc(name string) simulate.SourceFunc {
	if name == config.SourcePermutation {
		return simulate.Permutation
	}

	return simulate.Random
}

// newSource builds the configured source for a single run.
func newSource(cfg *config.Config) simulate.Source {
	return sourceFunc(cfg.Source)(cfg.N, rand.New(rand.NewSource(cfg.Seed)))
}

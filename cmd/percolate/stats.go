package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/simulate"
	"github.com/katalvlaran/percolation/trace"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Estimate the percolation threshold over independent trials",
	Long: `Estimate the percolation threshold over independent trials.

With --trace-db every trial is recorded as its own run once all trials
have finished. The text trace and open logging apply to "run" only.`,
	RunE: runStats,
}

func init() {
	f := statsCmd.Flags()
	f.IntP("trials", "t", 0, "Number of independent trials")
	f.IntP("workers", "w", 0, "Trials run at once")
	f.String("trace-db", "", "Record every trial in this SQLite database")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("trials") {
		cfg.Trials, _ = f.GetInt("trials")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("trace-db") {
		cfg.Trace.DB, _ = f.GetString("trace-db")
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be > 0, got %d", cfg.Workers)
	}

	opts := []simulate.StatsOption{
		simulate.WithSeed(cfg.Seed),
		simulate.WithWorkers(cfg.Workers),
		simulate.WithSource(sourceFunc(cfg.Source)),
	}
	var buffers []*trace.Buffer
	if cfg.Trace.DB != "" && cfg.Trials > 0 {
		// One buffer per trial; each is written by a single worker.
		buffers = make([]*trace.Buffer, cfg.Trials)
		for i := range buffers {
			buffers[i] = &trace.Buffer{}
		}
		opts = append(opts, simulate.WithTrialSink(func(trial int) percolation.Sink {
			return buffers[trial]
		}))
	}

	start := time.Now()
	s, err := simulate.Stats(cmd.Context(), cfg.N, cfg.Trials, opts...)
	if err != nil {
		return err
	}
	log.Printf("%d trials on %dx%d in %s", s.Trials, s.N, s.N, time.Since(start).Round(time.Millisecond))

	if buffers != nil {
		if err := recordTrials(cmd.Context(), cfg.Trace.DB, buffers); err != nil {
			return err
		}
		log.Printf("%d trials recorded in %s", len(buffers), cfg.Trace.DB)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "mean                    = %f\n", s.Mean)
	fmt.Fprintf(w, "stddev                  = %f\n", s.StdDev)
	fmt.Fprintf(w, "95%% confidence interval = [%f, %f]\n", s.ConfLo, s.ConfHi)

	return nil
}

// recordTrials writes each buffered trial to the database as a finished,
// percolated run.
func recordTrials(ctx context.Context, path string, buffers []*trace.Buffer) error {
	rec, err := trace.OpenRecorder(path)
	if err != nil {
		return err
	}
	for _, b := range buffers {
		b.Replay(rec)
		if err := rec.Finish(ctx, true); err != nil {
			rec.Close()
			return fmt.Errorf("record trial: %w", err)
		}
	}

	return rec.Close()
}

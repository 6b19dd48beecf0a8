package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/simulate"
	"github.com/katalvlaran/percolation/trace"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open random sites on one grid until it percolates",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.Bool("render", false, "Print the final grid")
	f.String("trace-text", "", "Write a plain trace (N, then one \"row col\" per open) to this file")
	f.String("trace-db", "", "Record the run in this SQLite database")
	f.Bool("log-opens", false, "Log every open")
	rootCmd.AddCommand(runCmd)
}

// applyRunFlags overrides trace and render settings from run flags.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("render") {
		cfg.Render, _ = f.GetBool("render")
	}
	if f.Changed("trace-text") {
		cfg.Trace.Text, _ = f.GetString("trace-text")
	}
	if f.Changed("trace-db") {
		cfg.Trace.DB, _ = f.GetString("trace-db")
	}
	if f.Changed("log-opens") {
		cfg.Trace.Log, _ = f.GetBool("log-opens")
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)

	var (
		sinks    []percolation.Sink
		text     *trace.TextSink
		recorder *trace.Recorder
	)
	if cfg.Trace.Text != "" {
		f, err := os.Create(cfg.Trace.Text)
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		defer f.Close()
		text = trace.NewTextSink(f)
		sinks = append(sinks, text)
	}
	if cfg.Trace.DB != "" {
		recorder, err = trace.OpenRecorder(cfg.Trace.DB)
		if err != nil {
			return err
		}
		defer recorder.Close()
		log.Printf("Database opened: %s", cfg.Trace.DB)
		sinks = append(sinks, recorder)
	}
	if cfg.Trace.Log {
		sinks = append(sinks, trace.NewLogSink(nil))
	}

	var opts []percolation.Option
	if len(sinks) > 0 {
		opts = append(opts, percolation.WithSink(trace.Multi(sinks...)))
	}
	p, err := percolation.New(cfg.N, opts...)
	if err != nil {
		return err
	}

	res, runErr := simulate.Run(ctx, p, newSource(cfg))
	if text != nil {
		if err := text.Flush(); err != nil {
			log.Printf("Failed to write trace %s: %v", cfg.Trace.Text, err)
		}
	}
	if recorder != nil {
		if err := recorder.Finish(ctx, p.Percolates()); err != nil {
			log.Printf("Failed to record run: %v", err)
		} else {
			log.Printf("Run recorded: %s", recorder.RunID())
		}
	}
	if runErr != nil {
		return runErr
	}

	return report(cmd.OutOrStdout(), p, res, cfg.Render)
}

// report prints the outcome of a single run.
func report(w io.Writer, p *percolation.Percolation, res simulate.Result, render bool) error {
	sizes := p.ClusterSizes()
	largest := 0
	if len(sizes) > 0 {
		largest = sizes[0]
	}
	fmt.Fprintf(w, "grid        = %dx%d\n", res.N, res.N)
	fmt.Fprintf(w, "percolates  = %t\n", p.Percolates())
	fmt.Fprintf(w, "open sites  = %d (draws %d)\n", res.Opened, res.Draws)
	fmt.Fprintf(w, "threshold   = %f\n", res.Threshold())
	fmt.Fprintf(w, "clusters    = %d (largest %d)\n", len(sizes), largest)
	if render {
		fmt.Fprintln(w)
		return p.Render(w)
	}

	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/simulate"
	"github.com/katalvlaran/percolation/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace-file]",
	Short: "Rebuild a grid from a text trace or a recorded run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplay,
}

var runsCmd = &cobra.Command{
	Use:   "runs <db>",
	Short: "List runs stored in a SQLite run log",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuns,
}

func init() {
	f := replayCmd.Flags()
	f.String("db", "", "SQLite run log to read from")
	f.String("run", "", "Run ID inside --db")
	f.Bool("render", true, "Print the rebuilt grid")
	rootCmd.AddCommand(replayCmd, runsCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()
	dbPath, _ := f.GetString("db")
	runID, _ := f.GetString("run")
	render, _ := f.GetBool("render")

	var (
		n     int
		opens [][2]int
	)
	switch {
	case len(args) == 1:
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		if n, opens, err = trace.ReadText(file); err != nil {
			return err
		}
	case dbPath != "" && runID != "":
		rec, err := trace.OpenRecorder(dbPath)
		if err != nil {
			return err
		}
		defer rec.Close()
		runs, err := rec.Runs(ctx)
		if err != nil {
			return err
		}
		for _, r := range runs {
			if r.ID == runID {
				n = r.N
			}
		}
		if n == 0 {
			return fmt.Errorf("run %s not found in %s", runID, dbPath)
		}
		if opens, err = rec.Opens(ctx, runID); err != nil {
			return err
		}
	default:
		return errors.New("replay needs a trace file or --db with --run")
	}

	p, err := percolation.New(n)
	if err != nil {
		return err
	}
	for _, rc := range opens {
		if err := p.Open(rc[0], rc[1]); err != nil {
			return err
		}
	}
	res := simulate.Result{N: n, Opened: p.OpenCount(), Draws: len(opens)}

	return report(cmd.OutOrStdout(), p, res, render)
}

func runRuns(cmd *cobra.Command, args []string) error {
	rec, err := trace.OpenRecorder(args[0])
	if err != nil {
		return err
	}
	defer rec.Close()

	runs, err := rec.Runs(cmd.Context())
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tN\tOPENED\tPERCOLATED\tFINISHED\tSTARTED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%t\t%s\n",
			r.ID, r.N, r.Opened, r.Percolated, r.Finished, r.StartedAt.Format("2006-01-02 15:04:05"))
	}

	return tw.Flush()
}

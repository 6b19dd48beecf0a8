package trace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so started_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNoRun indicates Finish was called before any Created event.
var ErrNoRun = errors.New("trace: no run in progress")

// Run is one recorded engine lifetime.
type Run struct {
	ID         string
	N          int
	StartedAt  time.Time
	Opened     int  // open calls recorded
	Percolated bool // as reported by Finish
	Finished   bool
}

// Recorder is a sink that stores runs in a SQLite database. Each Created
// event starts a run inside its own transaction; Finish commits it.
// A Recorder is not safe for concurrent use.
type Recorder struct {
	db    *sql.DB
	tx    *sql.Tx
	stmt  *sql.Stmt
	runID string
	seq   int
	err   error
}

// OpenRecorder opens (or creates) the database at path and migrates it.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	r := &Recorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return r, nil
}

func (r *Recorder) migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			n           INTEGER NOT NULL,
			started_at  TEXT NOT NULL,
			opened      INTEGER NOT NULL DEFAULT 0,
			percolated  INTEGER NOT NULL DEFAULT 0,
			finished    INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS opens (
			run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq     INTEGER NOT NULL,
			row     INTEGER NOT NULL,
			col     INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`)

	return err
}

// Created starts a new run. An unfinished previous run is committed as is.
func (r *Recorder) Created(n int) {
	if r.err != nil {
		return
	}
	if r.tx != nil {
		if r.err = r.commit(context.Background(), false, false); r.err != nil {
			return
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		r.err = fmt.Errorf("begin run: %w", err)
		return
	}
	id := uuid.NewString()
	_, err = tx.Exec(`INSERT INTO runs (id, n, started_at) VALUES (?, ?, ?)`,
		id, n, time.Now().UTC().Format(timeLayout))
	if err != nil {
		tx.Rollback()
		r.err = fmt.Errorf("insert run: %w", err)
		return
	}
	stmt, err := tx.Prepare(`INSERT INTO opens (run_id, seq, row, col) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		r.err = fmt.Errorf("prepare open insert: %w", err)
		return
	}
	r.tx, r.stmt, r.runID, r.seq = tx, stmt, id, 0
}

// Opened appends a coordinate to the current run.
func (r *Recorder) Opened(row, col int) {
	if r.err != nil || r.tx == nil {
		return
	}
	if _, err := r.stmt.Exec(r.runID, r.seq, row, col); err != nil {
		r.err = fmt.Errorf("insert open: %w", err)
		return
	}
	r.seq++
}

// Finish stores the outcome of the current run and commits it.
func (r *Recorder) Finish(ctx context.Context, percolated bool) error {
	if r.err != nil {
		return r.err
	}
	if r.tx == nil {
		return ErrNoRun
	}
	r.err = r.commit(ctx, true, percolated)

	return r.err
}

// commit writes the run totals and ends the current transaction. The final
// write ignores cancellation of ctx so an interrupted run is still kept.
func (r *Recorder) commit(ctx context.Context, finished, percolated bool) error {
	defer func() { r.tx, r.stmt = nil, nil }()
	r.stmt.Close()
	_, err := r.tx.ExecContext(context.WithoutCancel(ctx),
		`UPDATE runs SET opened = ?, percolated = ?, finished = ? WHERE id = ?`,
		r.seq, percolated, finished, r.runID)
	if err != nil {
		r.tx.Rollback()
		return fmt.Errorf("update run: %w", err)
	}
	if err := r.tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	return nil
}

// RunID returns the ID of the most recent run, or "" before the first.
func (r *Recorder) RunID() string {
	return r.runID
}

// Err returns the first error seen while recording.
func (r *Recorder) Err() error {
	return r.err
}

// Runs lists recorded runs, newest first.
func (r *Recorder) Runs(ctx context.Context) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, n, started_at, opened, percolated, finished FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			started string
		)
		if err := rows.Scan(&run.ID, &run.N, &started, &run.Opened, &run.Percolated, &run.Finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Opens returns the coordinates recorded for runID in call order.
func (r *Recorder) Opens(ctx context.Context, runID string) ([][2]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT row, col FROM opens WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query opens: %w", err)
	}
	defer rows.Close()

	var opens [][2]int
	for rows.Next() {
		var rc [2]int
		if err := rows.Scan(&rc[0], &rc[1]); err != nil {
			return nil, fmt.Errorf("scan open: %w", err)
		}
		opens = append(opens, rc)
	}

	return opens, rows.Err()
}

// Close commits any unfinished run and closes the database.
func (r *Recorder) Close() error {
	var err error
	if r.tx != nil {
		err = r.commit(context.Background(), false, false)
	}
	if cerr := r.db.Close(); err == nil {
		err = cerr
	}

	return err
}

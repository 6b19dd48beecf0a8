// Package trace provides percolation.Sink implementations that record what
// an engine was asked to do.
//
//   - TextSink writes the plain trace format: N on the first line, then one
//     "row col" line per Open call. ReadText parses it back for replay.
//   - LogSink forwards events to a *log.Logger.
//   - Recorder stores runs and their open sequences in SQLite.
//
// Sinks swallow write failures so the engine never sees them; call Err after
// a run to find out whether the trace is complete.
package trace

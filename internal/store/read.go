package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReadRun retrieves a run with its frames and events.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, pass, errors, cycles, started_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}

	if run.Frames, err = s.readFrames(ctx, id); err != nil {
		return Run{}, err
	}
	if run.Events, err = s.readEvents(ctx, id); err != nil {
		return Run{}, err
	}
	return run, nil
}

// ListRuns returns run summaries without frames or events, oldest first.
// An empty scenario lists all runs. Ties on start time are broken by ID.
func (s *Store) ListRuns(ctx context.Context, scenario string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario, pass, errors, cycles, started_at
		FROM runs
		WHERE ? = '' OR scenario = ?
		ORDER BY started_at ASC, id COLLATE BINARY ASC
	`, scenario, scenario)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RunsWithDigest returns the IDs of runs that captured a frame with the
// given digest, in ID order.
func (s *Store) RunsWithDigest(ctx context.Context, digest string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT run_id
		FROM frames
		WHERE digest = ?
		ORDER BY run_id COLLATE BINARY ASC
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("runs with digest: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("runs with digest: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runs with digest: %w", err)
	}
	return ids, nil
}

func (s *Store) readFrames(ctx context.Context, runID string) ([]Frame, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, rows, digest
		FROM frames
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var f Frame
		var text string
		if err := rows.Scan(&f.Seq, &text, &f.Digest); err != nil {
			return nil, fmt.Errorf("read frames: scan: %w", err)
		}
		f.Rows = unmarshalRows(text)
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}
	return frames, nil
}

func (s *Store) readEvents(ctx context.Context, runID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, cycle, op, detail
		FROM events
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.Seq, &ev.Cycle, &ev.Op, &ev.Detail); err != nil {
			return nil, fmt.Errorf("read events: scan: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return events, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (Run, error) {
	var run Run
	var errsJSON string
	var startedAt int64
	if err := r.Scan(&run.ID, &run.Scenario, &run.Pass, &errsJSON, &run.Cycles, &startedAt); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	errs, err := unmarshalErrors(errsJSON)
	if err != nil {
		return Run{}, fmt.Errorf("scan run %s: %w", run.ID, err)
	}
	run.Errors = errs
	run.StartedAt = time.Unix(0, startedAt).UTC()
	return run, nil
}

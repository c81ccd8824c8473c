package store

import (
	"context"
	"fmt"
)

// WriteRun inserts a run with its frames and events in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: rewriting an existing run
// ID leaves the stored run untouched and returns nil.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("write run: id is required")
	}

	errsJSON, err := marshalErrors(run.Errors)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, scenario, pass, errors, cycles, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Scenario,
		run.Pass,
		errsJSON,
		run.Cycles,
		run.StartedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("write run: insert run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("write run: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Run already recorded; its frames and events are immutable
		return tx.Commit()
	}

	for _, f := range run.Frames {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO frames (run_id, seq, rows, digest)
			VALUES (?, ?, ?, ?)
		`, run.ID, f.Seq, marshalRows(f.Rows), f.Digest); err != nil {
			return fmt.Errorf("write run: insert frame %d: %w", f.Seq, err)
		}
	}

	for _, ev := range run.Events {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO events (run_id, seq, cycle, op, detail)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, ev.Seq, ev.Cycle, ev.Op, ev.Detail); err != nil {
			return fmt.Errorf("write run: insert event %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded curation: what was sequenced and how well it
// turned out.
type Run struct {
	ID                 int64     `json:"id"`
	Source             string    `json:"source"`
	TrackCount         int       `json:"track_count"`
	AvgTransitionScore float64   `json:"avg_transition_score"`
	HarmonicViolations int       `json:"harmonic_violations"`
	CreatedAt          time.Time `json:"created_at"`
}

// RunStore records curated runs in postgres.
type RunStore struct {
	db *sql.DB
}

// NewRunStore builds a RunStore. A nil db yields a store whose writes
// and reads are no-ops.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

var StoreOptions = NewRunStore

// Save inserts one run row and returns its id.
func (s *RunStore) Save(ctx context.Context, run Run) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO runs (source, track_count, avg_transition_score, harmonic_violations, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		run.Source, run.TrackCount, run.AvgTransitionScore, run.HarmonicViolations, run.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("database: insert run: %w", err)
	}
	return id, nil
}

// Recent lists the latest runs, newest first.
func (s *RunStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, track_count, avg_transition_score, harmonic_violations, created_at
		 FROM runs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("database: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.TrackCount, &r.AvgTransitionScore,
			&r.HarmonicViolations, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("database: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

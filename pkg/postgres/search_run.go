package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// GetSearchRuns retrieves all search run records
func (d *DB) GetSearchRuns(ctx context.Context) ([]db.SearchRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, created_at, session_date::text, clan_tag, players, target_lineup,
			total_count, discarded_count, feasible_count
		FROM search_run
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query search runs: %w", err)
	}
	defer rows.Close()

	var runs []db.SearchRun
	for rows.Next() {
		var r db.SearchRun
		var createdAt time.Time
		var sessionDate *string
		if err := rows.Scan(&r.ID, &createdAt, &sessionDate, &r.ClanTag, &r.Players, &r.TargetLineup,
			&r.TotalCount, &r.DiscardedCount, &r.FeasibleCount); err != nil {
			return nil, fmt.Errorf("failed to scan search run: %w", err)
		}
		r.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		if sessionDate != nil {
			r.SessionDate = *sessionDate
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search runs: %w", err)
	}

	return runs, nil
}

// InsertSearchRun inserts a new search run record
func (d *DB) InsertSearchRun(ctx context.Context, run *db.SearchRun) error {
	var sessionDate *string
	if run.SessionDate != "" {
		sessionDate = &run.SessionDate
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO search_run (id, created_at, session_date, clan_tag, players, target_lineup,
			total_count, discarded_count, feasible_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.CreatedAt, sessionDate, run.ClanTag, run.Players, run.TargetLineup,
		run.TotalCount, run.DiscardedCount, run.FeasibleCount)
	if err != nil {
		return fmt.Errorf("failed to insert search run: %w", err)
	}

	return nil
}

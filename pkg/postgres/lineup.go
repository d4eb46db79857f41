package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// GetLineups retrieves all lineup records
func (d *DB) GetLineups(ctx context.Context) ([]db.Lineup, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, run_id::text, rank, assignment_id, score
		FROM lineup
		ORDER BY run_id, rank
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lineups: %w", err)
	}
	defer rows.Close()

	var lineups []db.Lineup
	for rows.Next() {
		var l db.Lineup
		if err := rows.Scan(&l.ID, &l.RunID, &l.Rank, &l.AssignmentID, &l.Score); err != nil {
			return nil, fmt.Errorf("failed to scan lineup: %w", err)
		}
		lineups = append(lineups, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lineups: %w", err)
	}

	return lineups, nil
}

// GetLineupSlots retrieves all lineup slot records
func (d *DB) GetLineupSlots(ctx context.Context) ([]db.LineupSlot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, lineup_id::text, position, ship, player_id, player_name
		FROM lineup_slot
		ORDER BY lineup_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lineup slots: %w", err)
	}
	defer rows.Close()

	var slots []db.LineupSlot
	for rows.Next() {
		var s db.LineupSlot
		if err := rows.Scan(&s.ID, &s.LineupID, &s.Position, &s.Ship, &s.PlayerID, &s.PlayerName); err != nil {
			return nil, fmt.Errorf("failed to scan lineup slot: %w", err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lineup slots: %w", err)
	}

	return slots, nil
}

// InsertLineups inserts lineups and their slots in one transaction
func (d *DB) InsertLineups(ctx context.Context, lineups []db.Lineup, slots []db.LineupSlot) error {
	if len(lineups) == 0 && len(slots) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, l := range lineups {
		_, err := tx.Exec(ctx, `
			INSERT INTO lineup (id, run_id, rank, assignment_id, score)
			VALUES ($1, $2, $3, $4, $5)
		`, l.ID, l.RunID, l.Rank, l.AssignmentID, l.Score)
		if err != nil {
			return fmt.Errorf("failed to insert lineup: %w", err)
		}
	}

	for _, s := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO lineup_slot (id, lineup_id, position, ship, player_id, player_name)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.ID, s.LineupID, s.Position, s.Ship, s.PlayerID, s.PlayerName)
		if err != nil {
			return fmt.Errorf("failed to insert lineup slot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/cb-team-builder/pkg/sheetssql"
)

// Schema returns the SheetsSQL schema for every stored model
func Schema() (*sheetssql.Schema, error) {
	return sheetssql.SchemaFromModels(SearchRun{}, Lineup{}, LineupSlot{})
}

// DB provides database operations using SheetsSQL
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{
		ssql: ssql,
	}
}

// GetSearchRuns retrieves all search run records
func (db *DB) GetSearchRuns(ctx context.Context) ([]SearchRun, error) {
	runs, err := sheetssql.GetTableAs[SearchRun](ctx, db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get search runs: %w", err)
	}
	return runs, nil
}

// InsertSearchRun inserts a new search run record
func (db *DB) InsertSearchRun(ctx context.Context, run *SearchRun) error {
	if err := sheetssql.InsertModel(ctx, db.ssql, *run); err != nil {
		return fmt.Errorf("failed to insert search run: %w", err)
	}
	return nil
}

// GetLineups retrieves all lineup records
func (db *DB) GetLineups(ctx context.Context) ([]Lineup, error) {
	lineups, err := sheetssql.GetTableAs[Lineup](ctx, db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get lineups: %w", err)
	}
	return lineups, nil
}

// GetLineupSlots retrieves all lineup slot records
func (db *DB) GetLineupSlots(ctx context.Context) ([]LineupSlot, error) {
	slots, err := sheetssql.GetTableAs[LineupSlot](ctx, db.ssql)
	if err != nil {
		return nil, fmt.Errorf("failed to get lineup slots: %w", err)
	}
	return slots, nil
}

// InsertLineups inserts lineups followed by their slots.
// Sheets has no transactions: if the slot insert fails the lineups stay without slots.
func (db *DB) InsertLineups(ctx context.Context, lineups []Lineup, slots []LineupSlot) error {
	if err := sheetssql.InsertModels(ctx, db.ssql, lineups); err != nil {
		return fmt.Errorf("failed to insert lineups: %w", err)
	}
	if err := sheetssql.InsertModels(ctx, db.ssql, slots); err != nil {
		return fmt.Errorf("failed to insert lineup slots: %w", err)
	}
	return nil
}

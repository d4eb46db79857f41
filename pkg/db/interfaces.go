package db

import "context"

// SearchRunStore defines the interface for search run database operations
type SearchRunStore interface {
	GetSearchRuns(ctx context.Context) ([]SearchRun, error)
	InsertSearchRun(ctx context.Context, run *SearchRun) error
}

// Database defines the interface for all database operations.
// Both the SheetsSQL-backed db.DB and postgres.DB implement this interface.
type Database interface {
	SearchRunStore
	GetLineups(ctx context.Context) ([]Lineup, error)
	GetLineupSlots(ctx context.Context) ([]LineupSlot, error)
	InsertLineups(ctx context.Context, lineups []Lineup, slots []LineupSlot) error
}

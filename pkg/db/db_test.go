package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/cb-team-builder/pkg/sheetssql"
)

// fakeSheets is a minimal in-memory spreadsheet
type fakeSheets struct {
	tabs map[string][][]interface{}
}

func (f *fakeSheets) GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error) {
	rows, ok := f.tabs[sheetRange]
	if !ok {
		return nil, fmt.Errorf("unknown range %s", sheetRange)
	}
	return rows, nil
}

func (f *fakeSheets) AppendRows(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error {
	f.tabs[sheetRange] = append(f.tabs[sheetRange], values...)
	return nil
}

func (f *fakeSheets) CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error) {
	f.tabs[sheetTitle] = nil
	return int64(len(f.tabs)), nil
}

func (f *fakeSheets) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	return nil, nil
}

func newTestDB(t *testing.T) *DB {
	t.Helper()
	schema, err := Schema()
	require.NoError(t, err)

	ssql, err := sheetssql.NewDB(context.Background(), &fakeSheets{tabs: map[string][][]interface{}{}}, "db-sheet", schema)
	require.NoError(t, err)
	return NewDB(ssql)
}

func TestSchema(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)

	names := []string{}
	for _, table := range schema.Tables {
		names = append(names, table.Name)
	}
	assert.Equal(t, []string{"search_run", "lineup", "lineup_slot"}, names)
}

func TestDB_SearchRunRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	run := &SearchRun{
		ID:             "run-1",
		CreatedAt:      "2025-03-01T18:00:00Z",
		SessionDate:    "2025-03-05",
		ClanTag:        "ILF",
		Players:        JoinList([]string{"Alice", "Bob"}),
		TargetLineup:   JoinList([]string{"Yamato", "Kleber"}),
		TotalCount:     2,
		DiscardedCount: 1,
		FeasibleCount:  1,
	}
	require.NoError(t, db.InsertSearchRun(ctx, run))

	runs, err := db.GetSearchRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, *run, runs[0])
	assert.Equal(t, []string{"Alice", "Bob"}, runs[0].PlayerNames())
	assert.Equal(t, []string{"Yamato", "Kleber"}, runs[0].Ships())
}

func TestDB_LineupsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	lineups := []Lineup{
		{ID: "l1", RunID: "run-1", Rank: 1, AssignmentID: 2, Score: 10},
		{ID: "l2", RunID: "run-1", Rank: 2, AssignmentID: 1, Score: 0},
	}
	slots := []LineupSlot{
		{ID: "s1", LineupID: "l1", Position: 0, Ship: "X", PlayerID: "2", PlayerName: "Bob"},
		{ID: "s2", LineupID: "l1", Position: 1, Ship: "Y", PlayerID: "1", PlayerName: "Alice"},
	}
	require.NoError(t, db.InsertLineups(ctx, lineups, slots))

	gotLineups, err := db.GetLineups(ctx)
	require.NoError(t, err)
	assert.Equal(t, lineups, gotLineups)

	gotSlots, err := db.GetLineupSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, slots, gotSlots)
}

func TestSearchRun_EmptyLists(t *testing.T) {
	assert.Nil(t, SearchRun{}.PlayerNames())
	assert.Nil(t, SearchRun{}.Ships())
}

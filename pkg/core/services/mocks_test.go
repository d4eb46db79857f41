package services

import (
	"context"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/clients/sheetsclient"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
	"github.com/jakechorley/cb-team-builder/pkg/db"
)

// mockPlayerSource implements PlayerSource
type mockPlayerSource struct {
	players []model.Player
	listErr error
}

func (m *mockPlayerSource) ListPlayers(ctx context.Context, cfg *config.Config) ([]model.Player, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.players, nil
}

// mockRosterWriter implements RosterWriter
type mockRosterWriter struct {
	saved   []model.Player
	calls   int
	saveErr error
}

func (m *mockRosterWriter) SavePlayers(ctx context.Context, players []model.Player) error {
	m.calls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = players
	return nil
}

// mockStore implements db.Database in memory
type mockStore struct {
	runs    []db.SearchRun
	lineups []db.Lineup
	slots   []db.LineupSlot

	insertRunErr     error
	insertLineupsErr error
	getRunsErr       error
}

var _ db.Database = (*mockStore)(nil)

func (m *mockStore) GetSearchRuns(ctx context.Context) ([]db.SearchRun, error) {
	if m.getRunsErr != nil {
		return nil, m.getRunsErr
	}
	return m.runs, nil
}

func (m *mockStore) InsertSearchRun(ctx context.Context, run *db.SearchRun) error {
	if m.insertRunErr != nil {
		return m.insertRunErr
	}
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockStore) GetLineups(ctx context.Context) ([]db.Lineup, error) {
	return m.lineups, nil
}

func (m *mockStore) GetLineupSlots(ctx context.Context) ([]db.LineupSlot, error) {
	return m.slots, nil
}

func (m *mockStore) InsertLineups(ctx context.Context, lineups []db.Lineup, slots []db.LineupSlot) error {
	if m.insertLineupsErr != nil {
		return m.insertLineupsErr
	}
	m.lineups = append(m.lineups, lineups...)
	m.slots = append(m.slots, slots...)
	return nil
}

// mockPublisher implements LineupPublisher
type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedLineups
	publishErr    error
}

func (m *mockPublisher) PublishLineups(ctx context.Context, spreadsheetID string, published *sheetsclient.PublishedLineups) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.spreadsheetID = spreadsheetID
	m.published = published
	return nil
}

func ship(name string) model.ShipEntry {
	return model.ShipEntry{Ship: name}
}

// testConfig targets two ships, X and Y
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.ClanTag = "ILF"
	cfg.TargetLineup = []string{"X", "Y"}
	return cfg
}

// testPlayers: Alice owns both ships, Bob only owns X and is wanted on it, Cara owns nothing
func testPlayers() []model.Player {
	return []model.Player{
		{ID: "1", Name: "Alice", Ships: []model.ShipEntry{ship("X"), ship("Y")}},
		{ID: "2", Name: "Bob", Ships: []model.ShipEntry{{Ship: "X", AdmiralStrong: true}}},
		{ID: "3", Name: "Cara"},
	}
}

package sheetsclient

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// PublishedLineupRow is one ranked lineup in the published table
type PublishedLineupRow struct {
	Rank     int
	LineupID int
	Score    float64
	Slots    []string // "player (ship)" in slot order
}

// PublishedLineups is the complete table written for a search run
type PublishedLineups struct {
	ClanTag     string
	SessionDate string // Format: "2006-01-02", empty when no session is scheduled
	RunID       string
	Ships       []string
	Rows        []PublishedLineupRow
}

// PublishLineups writes the lineups to a tab titled "<clan> lineups <session date>".
// The tab is created if it doesn't exist, otherwise its contents are replaced.
func (c *Client) PublishLineups(ctx context.Context, spreadsheetID string, published *PublishedLineups) error {
	tabTitle := lineupsTabTitle(published.ClanTag, published.SessionDate)

	titles, err := c.SheetTitles(ctx, spreadsheetID)
	if err != nil {
		return fmt.Errorf("failed to list tabs: %w", err)
	}

	if slices.Contains(titles, tabTitle) {
		if err := c.ClearValues(ctx, spreadsheetID, quoteTabTitle(tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(ctx, spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(ctx, spreadsheetID, quoteTabTitle(tabTitle)+"!A1", buildLineupRows(published)); err != nil {
		return fmt.Errorf("failed to write lineups: %w", err)
	}

	return nil
}

// lineupsTabTitle creates a tab title in the format "ILF lineups 2025-03-01"
func lineupsTabTitle(clanTag, sessionDate string) string {
	if sessionDate == "" {
		sessionDate = "unscheduled"
	}
	return fmt.Sprintf("%s lineups %s", clanTag, sessionDate)
}

// quoteTabTitle quotes a tab title for use in A1 notation
func quoteTabTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// buildLineupRows lays out the table: a run line, a blank row, then the header
// and one row per lineup
func buildLineupRows(published *PublishedLineups) [][]interface{} {
	header := []interface{}{"Rank", "Lineup", "Score"}
	for _, ship := range published.Ships {
		header = append(header, ship)
	}

	rows := [][]interface{}{
		{"Run", published.RunID},
		{},
		header,
	}

	for _, row := range published.Rows {
		sheetRow := []interface{}{row.Rank, row.LineupID, row.Score}
		for _, slot := range row.Slots {
			sheetRow = append(sheetRow, slot)
		}
		rows = append(rows, sheetRow)
	}

	return rows
}

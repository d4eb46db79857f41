package db

import "strings"

// listSeparator joins list columns. Player and ship names never contain it.
const listSeparator = ";"

// SearchRun represents a database search run record
type SearchRun struct {
	ID             string `ssql_header:"id" ssql_type:"uuid"`
	CreatedAt      string `ssql_header:"created_at" ssql_type:"timestamp"`
	SessionDate    string `ssql_header:"session_date" ssql_type:"date"`
	ClanTag        string `ssql_header:"clan_tag" ssql_type:"text"`
	Players        string `ssql_header:"players" ssql_type:"text"`
	TargetLineup   string `ssql_header:"target_lineup" ssql_type:"text"`
	TotalCount     int    `ssql_header:"total_count" ssql_type:"int"`
	DiscardedCount int    `ssql_header:"discarded_count" ssql_type:"int"`
	FeasibleCount  int    `ssql_header:"feasible_count" ssql_type:"int"`
}

// PlayerNames splits the stored player list
func (r SearchRun) PlayerNames() []string {
	return splitList(r.Players)
}

// Ships splits the stored target lineup
func (r SearchRun) Ships() []string {
	return splitList(r.TargetLineup)
}

// JoinList encodes a list column
func JoinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}

// Lineup represents a database record of one ranked lineup from a run
type Lineup struct {
	ID           string  `ssql_header:"id" ssql_type:"uuid"`
	RunID        string  `ssql_header:"run_id" ssql_type:"uuid"`
	Rank         int     `ssql_header:"rank" ssql_type:"int"`
	AssignmentID int     `ssql_header:"assignment_id" ssql_type:"int"`
	Score        float64 `ssql_header:"score" ssql_type:"float"`
}

// LineupSlot represents a database record of one player placed on one ship
type LineupSlot struct {
	ID         string `ssql_header:"id" ssql_type:"uuid"`
	LineupID   string `ssql_header:"lineup_id" ssql_type:"uuid"`
	Position   int    `ssql_header:"position" ssql_type:"int"`
	Ship       string `ssql_header:"ship" ssql_type:"text"`
	PlayerID   string `ssql_header:"player_id" ssql_type:"text"`
	PlayerName string `ssql_header:"player_name" ssql_type:"text"`
}

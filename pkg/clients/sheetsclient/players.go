package sheetsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
)

// Column names in the roster sheet. Every other header is a ship.
const (
	playerIDField = "Player ID"
	playerField   = "Player"
	joinDateField = "Join date"
	coreTeamField = "Core team"
)

// ListPlayers retrieves and parses the roster from the configured spreadsheet
func (c *Client) ListPlayers(ctx context.Context, cfg *config.Config) ([]model.Player, error) {
	values, err := c.GetValues(ctx, cfg.Roster.SheetID, cfg.Roster.Tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	players, err := parsePlayers(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return players, nil
}

// parsePlayers converts raw spreadsheet data into Player structs.
//
// Ship cells are free text read for markers:
//
//	Y    owned
//	*    player prefers the ship
//	mod  legendary module fitted
//	!!   admiral strongly prefers the player on the ship
//	!    admiral weakly prefers the player on the ship
//	-    owned but unavailable
//
// A cell without Y means the ship is not owned and every other marker is ignored.
func parsePlayers(raw [][]interface{}) ([]model.Player, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	headerRow := raw[0]
	fieldIndexes := make(map[string]int)
	shipColumns := make([]int, 0, len(headerRow))

	for i, cell := range headerRow {
		header := strings.TrimSpace(cellText(cell))
		switch header {
		case "":
			continue
		case playerIDField, playerField, joinDateField, coreTeamField:
			if _, exists := fieldIndexes[header]; exists {
				return nil, fmt.Errorf("duplicate column in header: %s", header)
			}
			fieldIndexes[header] = i
		default:
			shipColumns = append(shipColumns, i)
		}
	}

	for _, field := range []string{playerIDField, playerField} {
		if _, ok := fieldIndexes[field]; !ok {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
	}

	getCell := func(index int, row []interface{}) string {
		if index >= len(row) {
			return ""
		}
		return strings.TrimSpace(cellText(row[index]))
	}

	getField := func(field string, row []interface{}) string {
		index, ok := fieldIndexes[field]
		if !ok {
			return ""
		}
		return getCell(index, row)
	}

	_, hasCoreTeam := fieldIndexes[coreTeamField]

	players := make([]model.Player, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField(playerField, row)
		// Skip empty rows (rows with no player name)
		if name == "" {
			continue
		}

		id := getField(playerIDField, row)
		if id == "" {
			return nil, fmt.Errorf("player %q in row %d has no id", name, i+1)
		}

		player := model.Player{
			ID:       id,
			Name:     name,
			JoinDate: getField(joinDateField, row),
			// Without the column everyone counts as core team
			CoreTeam: !hasCoreTeam || isTruthy(getField(coreTeamField, row)),
		}

		for _, col := range shipColumns {
			entry, owned := parseShipCell(getCell(col, row))
			if !owned {
				continue
			}
			entry.Ship = strings.TrimSpace(cellText(headerRow[col]))
			player.Ships = append(player.Ships, entry)
		}

		players = append(players, player)
	}

	return players, nil
}

// parseShipCell reads the ownership markers from a single cell
func parseShipCell(cell string) (model.ShipEntry, bool) {
	if !strings.Contains(cell, "Y") {
		return model.ShipEntry{}, false
	}

	strong := strings.Contains(cell, "!!")
	return model.ShipEntry{
		Unavailable:     strings.Contains(cell, "-"),
		PlayerPreferred: strings.Contains(cell, "*"),
		AdmiralStrong:   strong,
		AdmiralWeak:     !strong && strings.Contains(cell, "!"),
		Legendary:       strings.Contains(strings.ToLower(cell), "mod"),
	}, true
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "x", "1":
		return true
	}
	return false
}

func cellText(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

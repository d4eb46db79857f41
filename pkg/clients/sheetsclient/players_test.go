package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/cb-team-builder/pkg/core/model"
)

func TestParsePlayers(t *testing.T) {
	raw := [][]interface{}{
		{"Player ID", "Player", "Join date", "Core team", "Kremlin", "Yamato", "Gearing"},
		{"101", "Alice", "2024-01-02", "Y", "Y*", "Y mod !!", ""},
		{"102", "Bob", "", "", "", "Y!", "Y-"},
		{"", "", "", "", "", "", ""},
		{"103", "Cara"},
	}

	players, err := parsePlayers(raw)
	require.NoError(t, err)
	require.Len(t, players, 3)

	alice := players[0]
	assert.Equal(t, "101", alice.ID)
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "2024-01-02", alice.JoinDate)
	assert.True(t, alice.CoreTeam)
	assert.Equal(t, []string{"Kremlin", "Yamato"}, alice.ShipNames())

	kremlin, ok := alice.Ship("Kremlin")
	require.True(t, ok)
	assert.Equal(t, model.ShipEntry{Ship: "Kremlin", PlayerPreferred: true}, kremlin)

	yamato, ok := alice.Ship("Yamato")
	require.True(t, ok)
	assert.True(t, yamato.Legendary)
	assert.True(t, yamato.AdmiralStrong)
	assert.False(t, yamato.AdmiralWeak)

	bob := players[1]
	assert.False(t, bob.CoreTeam)
	yamato, ok = bob.Ship("Yamato")
	require.True(t, ok)
	assert.True(t, yamato.AdmiralWeak)
	assert.False(t, yamato.AdmiralStrong)
	gearing, ok := bob.Ship("Gearing")
	require.True(t, ok)
	assert.True(t, gearing.Unavailable)

	cara := players[2]
	assert.Empty(t, cara.Ships)
}

func TestParsePlayers_WithoutCoreTeamColumn(t *testing.T) {
	raw := [][]interface{}{
		{"Player ID", "Player", "Kremlin"},
		{"1", "Alice", "Y"},
	}

	players, err := parsePlayers(raw)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.True(t, players[0].CoreTeam)
}

func TestParsePlayers_NumericCells(t *testing.T) {
	raw := [][]interface{}{
		{"Player ID", "Player", "Kremlin"},
		{float64(500123), "Alice", "Y"},
	}

	players, err := parsePlayers(raw)
	require.NoError(t, err)
	assert.Equal(t, "500123", players[0].ID)
}

func TestParsePlayers_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]interface{}
	}{
		{"no rows", [][]interface{}{}},
		{"missing id column", [][]interface{}{{"Player", "Kremlin"}}},
		{"missing player column", [][]interface{}{{"Player ID", "Kremlin"}}},
		{"duplicate column", [][]interface{}{{"Player ID", "Player", "Player"}}},
		{"row without id", [][]interface{}{{"Player ID", "Player"}, {"", "Alice"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePlayers(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseShipCell(t *testing.T) {
	_, owned := parseShipCell("* mod !!")
	assert.False(t, owned, "markers without Y are ignored")

	entry, owned := parseShipCell("Y MOD")
	assert.True(t, owned)
	assert.True(t, entry.Legendary)
}

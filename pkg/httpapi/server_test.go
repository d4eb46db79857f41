package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/model"
)

type stubSource struct {
	players []model.Player
	err     error
}

func (s *stubSource) ListPlayers(ctx context.Context, cfg *config.Config) ([]model.Player, error) {
	return s.players, s.err
}

func testRouter(source *stubSource) http.Handler {
	cfg := config.Default()
	cfg.ClanTag = "ILF"
	cfg.TargetLineup = []string{"X", "Y"}
	return NewRouter(source, cfg, zap.NewNop())
}

func testSource() *stubSource {
	return &stubSource{players: []model.Player{
		{ID: "1", Name: "Alice", Ships: []model.ShipEntry{{Ship: "X"}, {Ship: "Y"}}},
		{ID: "2", Name: "Bob", CoreTeam: true, Ships: []model.ShipEntry{{Ship: "X", AdmiralStrong: true}}},
		{ID: "3", Name: "Cara"},
	}}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestListPlayers(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodGet, "/v1/players", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var players []playerPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	require.Len(t, players, 3)
	assert.Equal(t, "Bob", players[0].Name)
	assert.True(t, players[0].CoreTeam)
	assert.True(t, players[0].Ships[0].AdmiralStrong)
	assert.Equal(t, []shipPayload{}, players[2].Ships)
}

func TestListPlayers_SourceError(t *testing.T) {
	rec := do(t, testRouter(&stubSource{err: errors.New("sheet down")}), http.MethodGet, "/v1/players", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateLineups(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodPost, "/v1/lineups", `{"players":["Alice","Bob"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp lineupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 1, resp.DiscardedCount)
	assert.Equal(t, 1, resp.FeasibleCount)
	require.Len(t, resp.Lineups, 1)

	best := resp.Lineups[0]
	assert.Equal(t, 1, best.Rank)
	assert.Equal(t, 2, best.ID)
	// Bob's strong preference plus his core team bonus
	assert.Equal(t, 60.0, best.Score)
	assert.Equal(t, []slotPayload{
		{Ship: "X", PlayerID: "2", Player: "Bob"},
		{Ship: "Y", PlayerID: "1", Player: "Alice"},
	}, best.Slots)
}

func TestGenerateLineups_NoFeasibleLineup(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodPost, "/v1/lineups", `{"players":["Bob","Cara"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lineupsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 2, resp.DiscardedCount)
	assert.Empty(t, resp.Lineups)
}

func TestGenerateLineups_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `players`},
		{"unknown field", `{"players":["Alice","Bob"],"colour":"red"}`},
		{"no players", `{"players":[]}`},
		{"blank player", `{"players":["Alice",""]}`},
		{"negative limit", `{"players":["Alice","Bob"],"limit":-1}`},
		{"unknown player", `{"players":["Alice","Zed"]}`},
		{"repeated player", `{"players":["Alice","Alice"]}`},
		{"wrong team size", `{"players":["Alice"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, testRouter(testSource()), http.MethodPost, "/v1/lineups", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestReportScarcity(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodPost, "/v1/scarcity", `{"players":["Bob","Cara"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scarcityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Bob", "Cara"}, resp.Players)
	require.Len(t, resp.Ranking, 2)
	assert.Equal(t, "Y", resp.Ranking[0].Ship)
	assert.Equal(t, 0, resp.Ranking[0].Count)
	assert.Equal(t, []string{"Bob"}, resp.Ranking[1].Owners)
	assert.Equal(t, []string{"Y", "X"}, resp.PriorityOrder)
	assert.Equal(t, []string{"Y"}, resp.Unfillable)
}

func TestReportScarcity_EmptyBodyUsesWholeRoster(t *testing.T) {
	rec := do(t, testRouter(testSource()), http.MethodPost, "/v1/scarcity", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scarcityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Players, 3)
	assert.Empty(t, resp.Unfillable)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("wrapped: %w", lineup.ErrSizeMismatch)))
	assert.Equal(t, http.StatusBadRequest, statusFor(lineup.ErrUnknownCandidate))
	assert.Equal(t, http.StatusBadRequest, statusFor(lineup.ErrDuplicateCandidate))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

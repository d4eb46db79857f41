package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/pkg/core/lineup"
	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

type shipPayload struct {
	Ship            string `json:"ship"`
	Unavailable     bool   `json:"unavailable,omitempty"`
	PlayerPreferred bool   `json:"player_preferred,omitempty"`
	AdmiralStrong   bool   `json:"admiral_strong,omitempty"`
	AdmiralWeak     bool   `json:"admiral_weak,omitempty"`
	Legendary       bool   `json:"legendary,omitempty"`
}

type playerPayload struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	JoinDate string        `json:"join_date,omitempty"`
	CoreTeam bool          `json:"core_team"`
	Ships    []shipPayload `json:"ships"`
}

type lineupsRequest struct {
	Players []string `json:"players" validate:"required,min=1,dive,required"`
	Limit   int      `json:"limit" validate:"gte=0"`
	Workers int      `json:"workers" validate:"gte=0,lte=64"`
}

type slotPayload struct {
	Ship     string `json:"ship"`
	PlayerID string `json:"player_id"`
	Player   string `json:"player"`
}

type lineupPayload struct {
	Rank  int           `json:"rank"`
	ID    int           `json:"id"`
	Score float64       `json:"score"`
	Slots []slotPayload `json:"slots"`
}

type lineupsResponse struct {
	SessionDate    string          `json:"session_date,omitempty"`
	TotalCount     int             `json:"total_count"`
	DiscardedCount int             `json:"discarded_count"`
	FeasibleCount  int             `json:"feasible_count"`
	Lineups        []lineupPayload `json:"lineups"`
}

type scarcityRequest struct {
	Players []string `json:"players" validate:"omitempty,dive,required"`
}

type shipCountPayload struct {
	Ship     string   `json:"ship"`
	Owners   []string `json:"owners"`
	Count    int      `json:"count"`
	Required int      `json:"required"`
}

type scarcityResponse struct {
	Players       []string           `json:"players"`
	Ranking       []shipCountPayload `json:"ranking"`
	PriorityOrder []string           `json:"priority_order"`
	Unfillable    []string           `json:"unfillable"`
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := services.ListPlayers(r.Context(), a.source, a.cfg, a.logger)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	payload := make([]playerPayload, len(players))
	for i, p := range players {
		ships := make([]shipPayload, len(p.Ships))
		for j, s := range p.Ships {
			ships[j] = shipPayload{
				Ship:            s.Ship,
				Unavailable:     s.Unavailable,
				PlayerPreferred: s.PlayerPreferred,
				AdmiralStrong:   s.AdmiralStrong,
				AdmiralWeak:     s.AdmiralWeak,
				Legendary:       s.Legendary,
			}
		}
		payload[i] = playerPayload{
			ID:       p.ID,
			Name:     p.Name,
			JoinDate: p.JoinDate,
			CoreTeam: p.CoreTeam,
			Ships:    ships,
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

func (a *API) generateLineups(w http.ResponseWriter, r *http.Request) {
	var req lineupsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := services.GenerateLineups(r.Context(), nil, a.source, a.cfg, a.logger, services.GenerateLineupsInput{
		Players: req.Players,
		Limit:   req.Limit,
		Workers: req.Workers,
		DryRun:  true,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := lineupsResponse{
		SessionDate:    result.Run.SessionDate,
		TotalCount:     result.Search.TotalCount,
		DiscardedCount: result.Search.DiscardedCount,
		FeasibleCount:  len(result.Search.Lineups),
		Lineups:        make([]lineupPayload, len(result.Top)),
	}
	for i, assignment := range result.Top {
		score, _ := assignment.Score().Value()
		slots := make([]slotPayload, 0, assignment.Len())
		for _, pair := range assignment.Pairs() {
			slots = append(slots, slotPayload{
				Ship:     pair.Resource,
				PlayerID: pair.Candidate.ID(),
				Player:   pair.Candidate.Name(),
			})
		}
		resp.Lineups[i] = lineupPayload{
			Rank:  i + 1,
			ID:    assignment.ID(),
			Score: score,
			Slots: slots,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) reportScarcity(w http.ResponseWriter, r *http.Request) {
	// An empty body reports on the whole roster
	var req scarcityRequest
	if r.ContentLength == 0 {
		req = scarcityRequest{}
	} else if err := decodeRequest(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := services.ReportScarcity(r.Context(), a.source, a.cfg, a.logger, req.Players)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := scarcityResponse{
		Players:       report.Players,
		Ranking:       make([]shipCountPayload, len(report.Ranking)),
		PriorityOrder: report.PriorityOrder,
		Unfillable:    []string{},
	}
	for i, rc := range report.Ranking {
		resp.Ranking[i] = shipCountPayload{
			Ship:     rc.Resource,
			Owners:   report.Owners[rc.Resource],
			Count:    rc.Count,
			Required: rc.Required,
		}
	}
	for _, rc := range report.Unfillable() {
		resp.Unfillable = append(resp.Unfillable, rc.Resource)
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeRequest reads a JSON body into v and validates it
func decodeRequest(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, lineup.ErrSizeMismatch),
		errors.Is(err, lineup.ErrUnknownCandidate),
		errors.Is(err, lineup.ErrDuplicateCandidate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

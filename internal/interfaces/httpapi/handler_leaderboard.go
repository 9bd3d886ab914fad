package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

type playerRowResponse struct {
	SavantID        string   `json:"savant_id"`
	Name            string   `json:"name"`
	Team            string   `json:"team"`
	PrimaryPosition string   `json:"primary_position"`
	Active          bool     `json:"active"`
	Season          int      `json:"season"`
	Barrels         int      `json:"barrels"`
	XWOBA           *float64 `json:"xwoba"`
	MaxExitVelocity *float64 `json:"max_exit_velocity"`
	HardHitPercent  *float64 `json:"hard_hit_percent"`
}

func toPlayerRowResponse(row hitting.LeaderRow) playerRowResponse {
	return playerRowResponse{
		SavantID:        row.SavantID,
		Name:            row.Name,
		Team:            row.Team,
		PrimaryPosition: string(row.Position),
		Active:          row.Active,
		Season:          row.Season,
		Barrels:         row.Barrels,
		XWOBA:           row.XWOBA,
		MaxExitVelocity: row.MaxExitVelocity,
		HardHitPercent:  row.HardHitPercent,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := usecase.LeaderboardQuery{
		Season:   h.season,
		Position: r.URL.Query().Get("position"),
		Limit:    parseLimit(r.URL.Query().Get("limit")),
	}

	rows, err := h.leaderboards.List(ctx, query)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]playerRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPlayerRowResponse(row))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

// parseLimit ignores a non-numeric limit instead of rejecting the request;
// zero means "use the default".
func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

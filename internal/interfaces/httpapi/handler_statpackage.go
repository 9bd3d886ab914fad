package httpapi

import (
	"net/http"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/statpackage"
)

type statPackageResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Philosophy         string    `json:"philosophy"`
	HittingCategories  []string  `json:"hitting_categories"`
	PitchingCategories []string  `json:"pitching_categories"`
	CreatedAt          time.Time `json:"created_at"`
}

func toStatPackageResponse(item statpackage.StatPackage) statPackageResponse {
	return statPackageResponse{
		ID:                 item.ID,
		Name:               item.Name,
		Philosophy:         item.Philosophy,
		HittingCategories:  item.HittingCategories,
		PitchingCategories: item.PitchingCategories,
		CreatedAt:          item.CreatedAt,
	}
}

func (h *Handler) ListStatPackages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatPackages")
	defer span.End()

	items, err := h.statPackages.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]statPackageResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toStatPackageResponse(item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

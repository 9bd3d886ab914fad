package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

type HandlerConfig struct {
	Leaderboards *usecase.LeaderboardService
	StatPackages *usecase.StatPackageService
	Rooms        *usecase.DraftRoomService

	// Season the player listing serves; the API exposes exactly one
	// season at a time.
	Season int

	Logger *logging.Logger
}

type Handler struct {
	leaderboards *usecase.LeaderboardService
	statPackages *usecase.StatPackageService
	rooms        *usecase.DraftRoomService
	season       int
	validator    *validator.Validate
	logger       *logging.Logger
	now          func() time.Time
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	season := cfg.Season
	if season <= 0 {
		season = time.Now().UTC().Year()
	}

	return &Handler{
		leaderboards: cfg.Leaderboards,
		statPackages: cfg.StatPackages,
		rooms:        cfg.Rooms,
		season:       season,
		validator:    validator.New(),
		logger:       logger,
		now:          time.Now,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, payload any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

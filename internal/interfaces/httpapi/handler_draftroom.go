package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/statdraft/baseball-draft/internal/usecase"
)

type createRoomRequest struct {
	Name        string `json:"name" validate:"required"`
	CreatorName string `json:"creator_name" validate:"required"`
	MaxTeams    int    `json:"max_teams" validate:"required,gte=2"`
	StatPackage string `json:"stat_package" validate:"required"`
}

type createRoomResponse struct {
	RoomID   string `json:"roomId"`
	Message  string `json:"message"`
	ShareURL string `json:"shareUrl"`
}

type roomResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	CreatorName        string               `json:"creator_name"`
	MaxTeams           int                  `json:"max_teams"`
	StatPackage        string               `json:"stat_package"`
	CreatedAt          time.Time            `json:"created_at"`
	StatPackageDetails *statPackageResponse `json:"stat_package_details"`
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRoom")
	defer span.End()

	var payload createRoomRequest
	if err := h.decodeAndValidate(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	room, err := h.rooms.Create(ctx, usecase.CreateRoomInput{
		Name:          payload.Name,
		CreatorName:   payload.CreatorName,
		MaxTeams:      payload.MaxTeams,
		StatPackageID: payload.StatPackage,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, createRoomResponse{
		RoomID:   room.ID,
		Message:  "Draft room created successfully",
		ShareURL: shareURL(r, room.ID),
	})
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoom")
	defer span.End()

	details, err := h.rooms.GetDetails(ctx, r.PathValue("roomID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := roomResponse{
		ID:          details.Room.ID,
		Name:        details.Room.Name,
		CreatorName: details.Room.CreatorName,
		MaxTeams:    details.Room.MaxTeams,
		StatPackage: details.Room.StatPackageID,
		CreatedAt:   details.Room.CreatedAt,
	}
	if details.StatPackage.ID != "" {
		pkg := toStatPackageResponse(details.StatPackage)
		out.StatPackageDetails = &pkg
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

// shareURL builds the join link participants receive, honoring the proxy
// scheme header when the service runs behind a TLS-terminating proxy.
func shareURL(r *http.Request, roomID string) string {
	scheme := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host + "/join/" + roomID
}

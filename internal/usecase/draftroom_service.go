package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/draftroom"
	"github.com/statdraft/baseball-draft/internal/domain/statpackage"
	"github.com/statdraft/baseball-draft/internal/platform/id"
)

type CreateRoomInput struct {
	Name          string
	CreatorName   string
	MaxTeams      int
	StatPackageID string
}

// RoomDetails is a room merged with its stat package, the shape the join
// screen needs in one read.
type RoomDetails struct {
	Room        draftroom.Room
	StatPackage statpackage.StatPackage
}

type DraftRoomService struct {
	roomRepo    draftroom.Repository
	packageRepo statpackage.Repository
	ids         id.Generator
	now         func() time.Time
}

func NewDraftRoomService(
	roomRepo draftroom.Repository,
	packageRepo statpackage.Repository,
	ids id.Generator,
) *DraftRoomService {
	if ids == nil {
		ids = id.NewTokenGenerator()
	}

	return &DraftRoomService{
		roomRepo:    roomRepo,
		packageRepo: packageRepo,
		ids:         ids,
		now:         time.Now,
	}
}

// Create issues a new room under a short random token. Tokens are not
// checked against rooms already issued; a collision surfaces as an insert
// error.
func (s *DraftRoomService) Create(ctx context.Context, input CreateRoomInput) (draftroom.Room, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftRoomService.Create")
	defer span.End()

	packageID := strings.TrimSpace(input.StatPackageID)
	if packageID != "" {
		_, exists, err := s.packageRepo.GetByID(ctx, packageID)
		if err != nil {
			return draftroom.Room{}, fmt.Errorf("get stat package id=%s: %w", packageID, err)
		}
		if !exists {
			return draftroom.Room{}, fmt.Errorf("%w: unknown stat package id=%s", ErrInvalidInput, packageID)
		}
	}

	token, err := s.ids.NewRoomID()
	if err != nil {
		return draftroom.Room{}, fmt.Errorf("generate room id: %w", err)
	}

	room := draftroom.Room{
		ID:            token,
		Name:          strings.TrimSpace(input.Name),
		CreatorName:   strings.TrimSpace(input.CreatorName),
		MaxTeams:      input.MaxTeams,
		StatPackageID: packageID,
		CreatedAt:     s.now().UTC(),
	}
	if err := room.Validate(); err != nil {
		return draftroom.Room{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.roomRepo.Insert(ctx, room); err != nil {
		return draftroom.Room{}, fmt.Errorf("insert room id=%s: %w", room.ID, err)
	}

	return room, nil
}

// GetDetails returns a room merged with its stat package. A missing stat
// package leaves the package section empty rather than failing the lookup.
func (s *DraftRoomService) GetDetails(ctx context.Context, roomID string) (RoomDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftRoomService.GetDetails")
	defer span.End()

	roomID = strings.ToUpper(strings.TrimSpace(roomID))
	if roomID == "" {
		return RoomDetails{}, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	room, exists, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return RoomDetails{}, fmt.Errorf("get room id=%s: %w", roomID, err)
	}
	if !exists {
		return RoomDetails{}, fmt.Errorf("%w: room id=%s", ErrNotFound, roomID)
	}

	details := RoomDetails{Room: room}
	if room.StatPackageID != "" {
		pkg, exists, err := s.packageRepo.GetByID(ctx, room.StatPackageID)
		if err != nil {
			return RoomDetails{}, fmt.Errorf("get stat package id=%s: %w", room.StatPackageID, err)
		}
		if exists {
			details.StatPackage = pkg
		}
	}

	return details, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/memory"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

type fakeIDGenerator struct {
	tokens []string
	next   int
}

func (g *fakeIDGenerator) NewRoomID() (string, error) {
	if g.next >= len(g.tokens) {
		return "", errors.New("no more tokens")
	}
	token := g.tokens[g.next]
	g.next++
	return token, nil
}

func newDraftRoomFixture(t *testing.T, tokens ...string) (*usecase.DraftRoomService, *memory.DraftRoomRepository) {
	t.Helper()

	packages := memory.NewStatPackageRepository()
	if err := memory.SeedStatPackages(context.Background(), packages, time.Now().UTC()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rooms := memory.NewDraftRoomRepository()
	svc := usecase.NewDraftRoomService(rooms, packages, &fakeIDGenerator{tokens: tokens})
	return svc, rooms
}

func TestDraftRoomService_Create(t *testing.T) {
	t.Parallel()

	svc, rooms := newDraftRoomFixture(t, "AB12CD")

	room, err := svc.Create(context.Background(), usecase.CreateRoomInput{
		Name:          "Friday Night Draft",
		CreatorName:   "Sam",
		MaxTeams:      10,
		StatPackageID: "classic-5x5",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if room.ID != "AB12CD" {
		t.Fatalf("unexpected room id: %s", room.ID)
	}
	if room.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	stored, exists, err := rooms.GetByID(context.Background(), "AB12CD")
	if err != nil || !exists {
		t.Fatalf("expected room stored, exists=%v err=%v", exists, err)
	}
	if stored.StatPackageID != "classic-5x5" {
		t.Fatalf("unexpected stored room: %+v", stored)
	}
}

func TestDraftRoomService_Create_UnknownStatPackage(t *testing.T) {
	t.Parallel()

	svc, _ := newDraftRoomFixture(t, "AB12CD")

	_, err := svc.Create(context.Background(), usecase.CreateRoomInput{
		Name:          "Friday Night Draft",
		CreatorName:   "Sam",
		MaxTeams:      10,
		StatPackageID: "no-such-package",
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDraftRoomService_Create_InvalidRoom(t *testing.T) {
	t.Parallel()

	svc, _ := newDraftRoomFixture(t, "AB12CD")

	_, err := svc.Create(context.Background(), usecase.CreateRoomInput{
		Name:        "Solo Draft",
		CreatorName: "Sam",
		MaxTeams:    1,
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for one-team room, got %v", err)
	}
}

func TestDraftRoomService_Create_TokenCollisionSurfaces(t *testing.T) {
	t.Parallel()

	// The generator never checks issued tokens, so a duplicate shows up as
	// an insert failure on the second room.
	svc, _ := newDraftRoomFixture(t, "SAME00", "SAME00")

	input := usecase.CreateRoomInput{Name: "Room", CreatorName: "Sam", MaxTeams: 8, StatPackageID: "moneyball"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err == nil {
		t.Fatal("expected second Create with the same token to fail")
	}
}

func TestDraftRoomService_GetDetails(t *testing.T) {
	t.Parallel()

	svc, _ := newDraftRoomFixture(t, "AB12CD")

	if _, err := svc.Create(context.Background(), usecase.CreateRoomInput{
		Name:          "Friday Night Draft",
		CreatorName:   "Sam",
		MaxTeams:      10,
		StatPackageID: "statcast-era",
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	details, err := svc.GetDetails(context.Background(), "ab12cd")
	if err != nil {
		t.Fatalf("GetDetails error: %v", err)
	}
	if details.Room.ID != "AB12CD" {
		t.Fatalf("lookup should be case-insensitive, got %+v", details.Room)
	}
	if details.StatPackage.Name != "Statcast Era" {
		t.Fatalf("expected merged stat package, got %+v", details.StatPackage)
	}

	if _, err := svc.GetDetails(context.Background(), "ZZZZZZ"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

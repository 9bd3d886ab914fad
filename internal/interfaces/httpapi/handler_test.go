package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/memory"
	"github.com/statdraft/baseball-draft/internal/interfaces/httpapi"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

type fixture struct {
	router   http.Handler
	players  *memory.PlayerRepository
	lines    *memory.HittingRepository
	packages *memory.StatPackageRepository
}

func floatPtr(v float64) *float64 { return &v }

func newFixture(t *testing.T, seedPackages bool) *fixture {
	t.Helper()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	packages := memory.NewStatPackageRepository()
	rooms := memory.NewDraftRoomRepository()

	if seedPackages {
		require.NoError(t, memory.SeedStatPackages(context.Background(), packages, time.Now().UTC()))
	}

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Leaderboards: usecase.NewLeaderboardService(lines),
		StatPackages: usecase.NewStatPackageService(packages),
		Rooms:        usecase.NewDraftRoomService(rooms, packages, nil),
		Season:       2025,
		Logger:       logging.NewNop(),
	})

	return &fixture{
		router:   httpapi.NewRouter(handler, logging.NewNop(), []string{"*"}),
		players:  players,
		lines:    lines,
		packages: packages,
	}
}

func (f *fixture) seedPlayer(t *testing.T, savantID, name string, position player.Position, barrels int) {
	t.Helper()

	require.NoError(t, f.players.Upsert(context.Background(), player.Player{
		SavantID: savantID,
		Name:     name,
		Team:     "LAD",
		Position: position,
		Active:   true,
	}))
	require.NoError(t, f.lines.UpsertStatLine(context.Background(), hitting.StatLine{
		SavantID: savantID,
		Season:   2025,
		Barrels:  barrels,
		XWOBA:    floatPtr(0.390),
	}))
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	rec := f.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.Equal(t, "ok", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	require.NoError(t, err)
}

func TestListStatPackages(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	rec := f.do(t, http.MethodGet, "/api/stat-packages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 3)
	for _, pkg := range body {
		require.NotEmpty(t, pkg["id"])
		categories, ok := pkg["hitting_categories"].([]any)
		require.True(t, ok, "hitting_categories must decode as an array")
		require.NotEmpty(t, categories)
	}
}

func TestListStatPackages_EmptyStore(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	rec := f.do(t, http.MethodGet, "/api/stat-packages", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.Contains(t, body["error"], "no stat packages")
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	rec := f.do(t, http.MethodPost, "/api/rooms",
		`{"name": "Friday Draft", "creator_name": "Sam", "max_teams": 10, "stat_package": "classic-5x5"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	require.Len(t, body["roomId"], 6)
	require.Equal(t, strings.ToUpper(body["roomId"]), body["roomId"])
	require.Equal(t, "Draft room created successfully", body["message"])
	require.Equal(t, "http://example.com/join/"+body["roomId"], body["shareUrl"])
}

func TestCreateRoom_Invalid(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)

	cases := map[string]string{
		"malformed body":       `{"name": `,
		"missing name":         `{"creator_name": "Sam", "max_teams": 10, "stat_package": "classic-5x5"}`,
		"one team":             `{"name": "Draft", "creator_name": "Sam", "max_teams": 1, "stat_package": "classic-5x5"}`,
		"unknown stat package": `{"name": "Draft", "creator_name": "Sam", "max_teams": 10, "stat_package": "nope"}`,
	}

	for name, body := range cases {
		rec := f.do(t, http.MethodPost, "/api/rooms", body)
		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)
		parsed := decodeBody[map[string]string](t, rec)
		require.NotEmptyf(t, parsed["error"], "case %q", name)
	}
}

func TestGetRoom(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	created := decodeBody[map[string]string](t, f.do(t, http.MethodPost, "/api/rooms",
		`{"name": "Friday Draft", "creator_name": "Sam", "max_teams": 10, "stat_package": "statcast-era"}`))

	rec := f.do(t, http.MethodGet, "/api/rooms/"+created["roomId"], "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, created["roomId"], body["id"])
	require.Equal(t, "Sam", body["creator_name"])

	details, ok := body["stat_package_details"].(map[string]any)
	require.True(t, ok, "expected merged stat package details")
	require.Equal(t, "Statcast Era", details["name"])
}

func TestGetRoom_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	rec := f.do(t, http.MethodGet, "/api/rooms/ZZZZZZ", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPlayers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.seedPlayer(t, "592450", "Aaron Judge", player.PositionRightField, 80)
	f.seedPlayer(t, "660271", "Shohei Ohtani", player.PositionDH, 70)
	f.seedPlayer(t, "605141", "Mookie Betts", player.PositionShortstop, 40)

	rec := f.do(t, http.MethodGet, "/api/players", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 3)
	require.Equal(t, "Aaron Judge", body[0]["name"])
	require.Equal(t, "Shohei Ohtani", body[1]["name"])
}

func TestListPlayers_PositionAndLimit(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.seedPlayer(t, "592450", "Aaron Judge", player.PositionRightField, 80)
	f.seedPlayer(t, "605141", "Mookie Betts", player.PositionShortstop, 40)

	rec := f.do(t, http.MethodGet, "/api/players?position=SS&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	require.Equal(t, "SS", body[0]["primary_position"])

	rec = f.do(t, http.MethodGet, "/api/players?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]map[string]any](t, rec), 1)
}

func TestListPlayers_NonNumericLimitIsIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	f.seedPlayer(t, "592450", "Aaron Judge", player.PositionRightField, 80)

	rec := f.do(t, http.MethodGet, "/api/players?limit=banana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]map[string]any](t, rec), 1)
}

func TestListPlayers_UnknownPosition(t *testing.T) {
	t.Parallel()

	f := newFixture(t, true)
	rec := f.do(t, http.MethodGet, "/api/players?position=QB", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

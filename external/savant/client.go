package savant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	resty "github.com/go-resty/resty/v2"
	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

const (
	defaultBaseURL = "https://baseballsavant.mlb.com"
	defaultTimeout = 30 * time.Second

	// The leaderboard endpoints reject clients that do not present a
	// browser user agent.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	statcastPath   = "/leaderboard/statcast"
	battedBallPath = "/leaderboard/batted-ball"

	leaderboardMarker = "leaderboard_data"
)

// ErrLeaderboardNotFound means the page came back but no script block
// carried the leaderboard blob, usually a markup change upstream.
var ErrLeaderboardNotFound = crerr.New("leaderboard data not found in page")

// Pages inline the leaderboard as a script-embedded JSON array. Patterns
// are tried strict first, then without the trailing semicolon, then the
// quoted-key form some pages ship.
var leaderboardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)leaderboard_data\s*=\s*(\[.*?\]);`),
	regexp.MustCompile(`(?s)leaderboard_data\s*=\s*(\[.*?\])`),
	regexp.MustCompile(`(?s)"leaderboard_data":\s*(\[.*?\])`),
}

type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *logging.Logger
}

// Client scrapes the statcast and batted-ball leaderboards.
type Client struct {
	rest   *resty.Client
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Client{rest: rest, logger: logger}
}

// FetchHittingRecords scrapes the statcast leaderboard for one season.
// Rows that cannot be mapped are logged and skipped rather than failing
// the whole fetch.
func (c *Client) FetchHittingRecords(ctx context.Context, season, minAtBats int) ([]usecase.HittingRecord, error) {
	rows, err := fetchLeaderboard[LeaderboardRow](ctx, c, statcastPath, season, minAtBats)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]usecase.HittingRecord, 0, len(rows))
	for _, row := range rows {
		record, err := MapHittingRow(row, season, now)
		if err != nil {
			c.logger.WarnContext(ctx, "skip unmappable leaderboard row", "name", row.EntityName.String(), "error", err)
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

// FetchBattedBallPatches scrapes the batted-ball profile leaderboard for
// one season.
func (c *Client) FetchBattedBallPatches(ctx context.Context, season, minAtBats int) ([]hitting.BattedBallPatch, error) {
	rows, err := fetchLeaderboard[BattedBallRow](ctx, c, battedBallPath, season, minAtBats)
	if err != nil {
		return nil, err
	}

	out := make([]hitting.BattedBallPatch, 0, len(rows))
	for _, row := range rows {
		patch, err := MapBattedBallRow(row, season)
		if err != nil {
			c.logger.WarnContext(ctx, "skip unmappable batted-ball row", "error", err)
			continue
		}
		out = append(out, patch)
	}

	return out, nil
}

func fetchLeaderboard[T any](ctx context.Context, c *Client, path string, season, minAtBats int) ([]T, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}
	if minAtBats < 0 {
		minAtBats = 0
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"year": strconv.Itoa(season),
			"abs":  strconv.Itoa(minAtBats),
		}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s season=%d: %w", path, season, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s season=%d: status=%d", path, season, resp.StatusCode())
	}

	raw, err := extractLeaderboardJSON(resp.String())
	if err != nil {
		return nil, crerr.Wrapf(err, "extract %s season=%d", path, season)
	}

	var rows []T
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode leaderboard payload %s season=%d: %w", path, season, err)
	}

	return rows, nil
}

func extractLeaderboardJSON(page string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var payload []byte
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content := sel.Text()
		if !strings.Contains(content, leaderboardMarker) {
			return true
		}
		for _, pattern := range leaderboardPatterns {
			matches := pattern.FindStringSubmatch(content)
			if len(matches) == 2 {
				payload = []byte(matches[1])
				return false
			}
		}
		return true
	})

	if payload == nil {
		return nil, ErrLeaderboardNotFound
	}
	return payload, nil
}

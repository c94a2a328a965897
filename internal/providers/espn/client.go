package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/providers"
	"football-lines-service/internal/timeutil"
)

// Config controls how the client reaches the upstream site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches scoreboards and per-event summaries and maps them to
// domain models. It serves as both the game provider and the summary
// (pickcenter) line source.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Name identifies this client when used as a line source.
func (c *Client) Name() string { return summarySourceName }

// FetchGames retrieves the scoreboard for a league and date.
func (c *Client) FetchGames(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	if !league.Valid() {
		return nil, fmt.Errorf("espn: unsupported league %q", league)
	}

	req, err := c.buildScoreboardRequest(ctx, league, date)
	if err != nil {
		return nil, err
	}

	var payload scoreboardResponse
	if err := c.doJSON(req, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		game, err := mapEvent(league, ev)
		if err != nil {
			// One malformed event should not sink the slate.
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// FetchLines retrieves the pickcenter odds for a single event.
func (c *Client) FetchLines(ctx context.Context, game domain.Game) (domain.Line, error) {
	u := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, game.League.APIPath(), game.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Line{}, err
	}

	var payload summaryResponse
	if err := c.doJSON(req, &payload); err != nil {
		return domain.Line{}, err
	}

	line := mapPickcenter(game, payload.Pickcenter, c.now())
	return line, nil
}

func (c *Client) buildScoreboardRequest(ctx context.Context, league domain.League, date string) (*http.Request, error) {
	u := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, league.APIPath())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", c.resolveDate(date))
	q.Set("limit", scoreboardLimit)
	if league == domain.LeagueCollege {
		q.Set("groups", collegeGroupsParam)
	}
	req.URL.RawQuery = q.Encode()
	return req, nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			return timeutil.FormatCompactDate(parsed)
		}
	}
	return timeutil.FormatCompactDate(c.now().UTC())
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"football-lines-service/internal/domain"
)

const (
	sourceName         = "scrape"
	defaultHTTPTimeout = 15 * time.Second
	pageCacheTTL       = 30 * time.Second

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36"
)

// Scraper pulls betting lines off a public scores-and-odds HTML page.
// It is the lowest-priority source: pages change without notice, so every
// failure degrades to "no line" rather than an error the resolver must
// handle specially.
type Scraper struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu    sync.Mutex
	pages map[domain.League]cachedPage
}

type cachedPage struct {
	fetchedAt time.Time
	rows      map[string]parsedRow
}

// Config controls the scraper target.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New constructs a Scraper. An empty BaseURL yields a scraper that always
// reports no lines, which lets callers wire it unconditionally.
func New(cfg Config) *Scraper {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Scraper{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: client,
		now:        time.Now,
		pages:      make(map[domain.League]cachedPage),
	}
}

func (s *Scraper) Name() string { return sourceName }

// FetchLines returns the scraped line for the game's matchup, if the page
// lists one. The page is cached briefly so one slate poll does not refetch
// it per game.
func (s *Scraper) FetchLines(ctx context.Context, game domain.Game) (domain.Line, error) {
	if s.baseURL == "" {
		return domain.Line{}, nil
	}

	rows, err := s.pageRows(ctx, game.League)
	if err != nil {
		return domain.Line{}, err
	}

	key := strings.ToUpper(game.AwayTeam.Abbreviation) + "@" + strings.ToUpper(game.HomeTeam.Abbreviation)
	row, ok := rows[key]
	if !ok {
		return domain.Line{}, nil
	}
	return rowToLine(game, row, s.now()), nil
}

func (s *Scraper) pageRows(ctx context.Context, league domain.League) (map[string]parsedRow, error) {
	s.mu.Lock()
	cached, ok := s.pages[league]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.fetchedAt) < pageCacheTTL {
		return cached.rows, nil
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, league)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape: status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	rows := parseRows(doc)
	s.mu.Lock()
	s.pages[league] = cachedPage{fetchedAt: s.now(), rows: rows}
	s.mu.Unlock()
	return rows, nil
}

// rowToLine converts a parsed row to a home-relative Line. Pages that quote
// the spread against the favorite get their sign flipped when the favorite
// is the away team.
func rowToLine(game domain.Game, row parsedRow, capturedAt time.Time) domain.Line {
	line := domain.Line{Source: sourceName, CapturedAt: capturedAt}

	if row.Spread != nil {
		spread := *row.Spread
		if row.SpreadTeam != "" && row.SpreadTeam == strings.ToUpper(game.AwayTeam.Abbreviation) {
			spread = -spread
		}
		line.Spread = &spread
	}
	if row.Total != nil {
		total := *row.Total
		line.Total = &total
	}
	return line
}

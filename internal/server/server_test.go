package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"football-lines-service/internal/config"
	"football-lines-service/internal/domain"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/poller"
)

func testConfig() config.Config {
	return config.Config{
		Port:        "8080",
		Leagues:     []domain.League{domain.LeagueNFL, domain.LeagueCollege},
		MinInterval: 30 * time.Second,
		MaxInterval: 15 * time.Minute,
		Provider:    config.ProviderConfig{Name: "fixture", MinGap: time.Second, RetryMaxElapsed: time.Second},
		State:       config.StateConfig{Backend: "memory"},
		Snapshots:   config.SnapshotConfig{Dir: "", RetentionDays: 1},
		Metrics:     config.MetricsConfig{Enabled: false},
	}
}

func TestNewWiresFixtureService(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots.Dir = t.TempDir()

	s, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/health = %d", rec.Code)
	}

	statuses := s.pollers.Statuses()
	if len(statuses) != 2 {
		t.Errorf("pollers = %d, want one per league", len(statuses))
	}
	if s.sheetClient != nil {
		t.Error("expected no sheet client without a spreadsheet id")
	}
}

func TestNewFailsWhenRedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.State = config.StateConfig{Backend: "redis", RedisAddr: "127.0.0.1:1", TTL: time.Hour}

	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}

func TestLineSourcesOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Scrape.BaseURL = "https://example.com/odds"

	base := selectProvider(cfg, nil)
	sources := lineSources(cfg, base)
	if len(sources) != 3 {
		t.Fatalf("sources = %d, want scoreboard, summary, scrape", len(sources))
	}
	if sources[0].Name() != "scoreboard" {
		t.Errorf("first source = %q", sources[0].Name())
	}
	if sources[2].Name() != "scrape" {
		t.Errorf("last source = %q", sources[2].Name())
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Provider.Name = "unknown"
	p := selectProvider(cfg, nil)
	if _, err := p.FetchGames(context.Background(), domain.LeagueNFL, "2024-09-08"); err != nil {
		t.Errorf("fixture fallback failed: %v", err)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("ESPN", nil); got != "espn" {
		t.Errorf("got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Errorf("got %q", got)
	}
}

type stubHTTPServer struct {
	shutdowns atomic.Int32
}

func (s *stubHTTPServer) ListenAndServe() error          { return http.ErrServerClosed }
func (s *stubHTTPServer) Shutdown(context.Context) error { s.shutdowns.Add(1); return nil }
func (s *stubHTTPServer) Addr() string                   { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler          { return http.NewServeMux() }

type stubPollers struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (s *stubPollers) Start(context.Context)                     { s.started.Add(1) }
func (s *stubPollers) Stop(context.Context) error                { s.stopped.Add(1); return nil }
func (s *stubPollers) Statuses() map[domain.League]poller.Status { return nil }
func (s *stubPollers) Ready() bool                               { return true }

func TestRunShutsDownCleanly(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	pollers := &stubPollers{}
	s := newServerWithDeps(testConfig(), nil, httpSrv, pollers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Run(ctx, cancel)

	if pollers.started.Load() != 1 || pollers.stopped.Load() != 1 {
		t.Errorf("pollers started=%d stopped=%d", pollers.started.Load(), pollers.stopped.Load())
	}
	if httpSrv.shutdowns.Load() != 1 {
		t.Errorf("http shutdowns = %d", httpSrv.shutdowns.Load())
	}
}

func TestBuildMetricsReusesInjectedRecorder(t *testing.T) {
	rec, srv, stop := buildMetrics(testConfig(), nil, metrics.NewRecorder())
	if rec == nil || srv != nil || stop != nil {
		t.Errorf("buildMetrics with injected recorder = %v %v %p", rec, srv, stop)
	}
}

package config

import "time"

// Environment variable names.
const (
	envPort        = "PORT"
	envLeagues     = "LEAGUES"
	envMinInterval = "POLL_MIN_INTERVAL"
	envMaxInterval = "POLL_MAX_INTERVAL"

	envProviderName = "GAME_PROVIDER"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envESPNTimeout  = "ESPN_TIMEOUT"
	envScrapeURL    = "SCRAPE_BASE_URL"
	envProviderGap  = "PROVIDER_MIN_GAP"
	envRetryMax     = "PROVIDER_RETRY_MAX_ELAPSED"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"

	envSheetID          = "SHEET_ID"
	envSheetCredentials = "SHEET_CREDENTIALS_FILE"
	envSheetEndpoint    = "SHEET_ENDPOINT"
	envSheetTabNFL      = "SHEET_TAB_NFL"
	envSheetTabCollege  = "SHEET_TAB_COLLEGE"

	envStateBackend = "STATE_BACKEND"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envStateTTL     = "STATE_TTL"

	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envMetricsService = "METRICS_SERVICE_NAME"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
)

// Defaults.
const (
	defaultPort        = "8080"
	defaultLeagues     = "nfl,college-football"
	defaultMinInterval = 30 * time.Second
	defaultMaxInterval = 15 * time.Minute

	defaultProviderName = "espn"
	defaultESPNBaseURL  = "https://site.api.espn.com/apis/site/v2/sports"
	defaultESPNTimeout  = 10 * time.Second
	defaultProviderGap  = 15 * time.Second
	defaultRetryMax     = 45 * time.Second

	defaultSheetTabNFL     = "NFL"
	defaultSheetTabCollege = "CFB"

	defaultStateBackend = "memory"
	defaultRedisAddr    = "localhost:6379"
	defaultStateTTL     = 48 * time.Hour

	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotRetention = 14

	defaultMetricsEnabled = true
	defaultMetricsPort    = "9090"
	defaultMetricsService = "football-lines-service"
)

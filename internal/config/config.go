package config

import (
	"football-lines-service/internal/domain"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port        string
	Leagues     []domain.League
	MinInterval Duration
	MaxInterval Duration
	CORSOrigins []string
	ESPN        ESPNConfig
	Scrape      ScrapeConfig
	Provider    ProviderConfig
	Sheet       SheetConfig
	State       StateConfig
	Snapshots   SnapshotConfig
	Metrics     MetricsConfig
}

// ESPNConfig controls the scoreboard/summary API client.
type ESPNConfig struct {
	BaseURL string
	Timeout Duration
}

// ScrapeConfig controls the HTML odds fallback.
type ScrapeConfig struct {
	BaseURL string
}

// ProviderConfig holds the game provider choice and shared wrapper settings.
type ProviderConfig struct {
	Name            string // espn or fixture
	MinGap          Duration
	RetryMaxElapsed Duration
}

// SheetConfig controls the spreadsheet persistence layer.
type SheetConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	Endpoint        string // test override; empty in production
	Tabs            map[domain.League]string
}

// StateConfig selects the dedupe state backend.
type StateConfig struct {
	Backend   string // memory or redis
	RedisAddr string
	RedisDB   int
	TTL       Duration
}

// SnapshotConfig controls the local audit snapshots.
type SnapshotConfig struct {
	Dir           string
	RetentionDays int
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Leagues:     loadLeagues(),
		MinInterval: durationEnvOrDefault(envMinInterval, defaultMinInterval),
		MaxInterval: durationEnvOrDefault(envMaxInterval, defaultMaxInterval),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, ""),
		ESPN: ESPNConfig{
			BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
			Timeout: durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
		},
		Scrape: ScrapeConfig{
			BaseURL: envOrDefault(envScrapeURL, ""),
		},
		Provider: ProviderConfig{
			Name:            envOrDefault(envProviderName, defaultProviderName),
			MinGap:          durationEnvOrDefault(envProviderGap, defaultProviderGap),
			RetryMaxElapsed: durationEnvOrDefault(envRetryMax, defaultRetryMax),
		},
		Sheet: SheetConfig{
			SpreadsheetID:   envOrDefault(envSheetID, ""),
			CredentialsFile: envOrDefault(envSheetCredentials, ""),
			Endpoint:        envOrDefault(envSheetEndpoint, ""),
			Tabs: map[domain.League]string{
				domain.LeagueNFL:     envOrDefault(envSheetTabNFL, defaultSheetTabNFL),
				domain.LeagueCollege: envOrDefault(envSheetTabCollege, defaultSheetTabCollege),
			},
		},
		State: StateConfig{
			Backend:   envOrDefault(envStateBackend, defaultStateBackend),
			RedisAddr: envOrDefault(envRedisAddr, defaultRedisAddr),
			RedisDB:   intEnvOrDefault(envRedisDB, 0),
			TTL:       durationEnvOrDefault(envStateTTL, defaultStateTTL),
		},
		Snapshots: SnapshotConfig{
			Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
			RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsEnabled, defaultMetricsEnabled),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envMetricsService, defaultMetricsService),
			OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
		},
	}
}

func loadLeagues() []domain.League {
	raw := listEnvOrDefault(envLeagues, defaultLeagues)
	leagues := make([]domain.League, 0, len(raw))
	for _, name := range raw {
		league, err := domain.ParseLeague(name)
		if err != nil {
			continue
		}
		leagues = append(leagues, league)
	}
	if len(leagues) == 0 {
		leagues = []domain.League{domain.LeagueNFL, domain.LeagueCollege}
	}
	return leagues
}

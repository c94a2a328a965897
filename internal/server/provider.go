package server

import (
	"log/slog"

	"football-lines-service/internal/config"
	"football-lines-service/internal/providers"
	"football-lines-service/internal/providers/espn"
	"football-lines-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch cfg.Provider.Name {
	case "espn", "":
		return espn.NewClient(espn.Config{
			BaseURL: cfg.ESPN.BaseURL,
			Timeout: cfg.ESPN.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider.Name))
		}
		return fixture.New()
	}
}

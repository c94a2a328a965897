package server

import (
	"context"
	"log/slog"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/sheet"
)

// discardSheet stands in for the sheet client when no spreadsheet is
// configured, so the poll loops still exercise the full pipeline locally.
type discardSheet struct {
	logger *slog.Logger
}

func (d discardSheet) Upsert(_ context.Context, league domain.League, updates []sheet.RowUpdate) error {
	logging.Info(d.logger, "sheet write discarded",
		slog.String(logging.FieldLeague, string(league)),
		slog.Int(logging.FieldCount, len(updates)),
	)
	return nil
}

package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
)

const valueInputOption = "USER_ENTERED"

// Config controls how the client reaches the spreadsheet.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
	Endpoint        string // test override; empty in production
	Tabs            map[domain.League]string
}

// Client writes game rows into the shared spreadsheet. One tab per league;
// rows are located by the key column and appended when missing.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	tabs          map[domain.League]string
	logger        *slog.Logger
	metrics       *metrics.Recorder
}

// NewClient builds a client from service-account credentials. The endpoint
// override lets tests point it at a stub server without auth.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheet: spreadsheet id required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = []option.ClientOption{option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication()}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheet: build service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		tabs:          cfg.Tabs,
		logger:        logger,
		metrics:       recorder,
	}, nil
}

// Tab returns the tab name configured for a league.
func (c *Client) Tab(league domain.League) (string, error) {
	tab, ok := c.tabs[league]
	if !ok || tab == "" {
		return "", fmt.Errorf("sheet: no tab configured for league %q", league)
	}
	return tab, nil
}

// EnsureHeaders writes the header row on any tab that is still blank.
func (c *Client) EnsureHeaders(ctx context.Context) error {
	for _, tab := range c.tabs {
		resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, headerRange(tab)).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheet: read header of %s: %w", tab, err)
		}
		if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
			continue
		}

		vr := &sheets.ValueRange{Values: [][]any{HeaderRow()}}
		_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, headerRange(tab), vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheet: write header of %s: %w", tab, err)
		}
		logging.Info(c.logger, "wrote sheet header", slog.String("tab", tab))
	}
	return nil
}

// Upsert applies the row updates to the league tab: existing rows (located
// by key) get range writes, unknown keys get appended rows.
func (c *Client) Upsert(ctx context.Context, league domain.League, updates []RowUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tab, err := c.Tab(league)
	if err != nil {
		return err
	}

	index, err := c.keyIndex(ctx, tab)
	if err != nil {
		return err
	}

	plan := BuildPlan(tab, index, updates)
	if plan.Empty() {
		return nil
	}

	err = c.apply(ctx, tab, plan)
	c.metrics.RecordSheetWrite(plan.CellCount(), err)
	if err != nil {
		return err
	}

	logging.Info(c.logger, "sheet flush",
		slog.String("tab", tab),
		slog.Int("appends", len(plan.Appends)),
		slog.Int("range_writes", len(plan.Writes)),
		slog.Int(logging.FieldCount, plan.CellCount()),
	)
	return nil
}

// keyIndex reads the key column and maps key -> 1-based sheet row.
// Duplicate keys keep the first occurrence; later ones were added by hand
// and are left alone.
func (c *Client) keyIndex(ctx context.Context, tab string) (map[string]int, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, keyColumnRange(tab)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheet: read key column of %s: %w", tab, err)
	}

	index := make(map[string]int, len(resp.Values))
	for i, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		key, _ := row[0].(string)
		if key == "" {
			continue
		}
		if _, dup := index[key]; dup {
			logging.Warn(c.logger, "duplicate key in sheet", slog.String("tab", tab), slog.String("key", key))
			continue
		}
		index[key] = i + 2 // data starts on row 2
	}
	return index, nil
}

func (c *Client) apply(ctx context.Context, tab string, plan Plan) error {
	if len(plan.Appends) > 0 {
		vr := &sheets.ValueRange{Values: plan.Appends}
		_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, appendRange(tab), vr).
			ValueInputOption(valueInputOption).
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheet: append rows to %s: %w", tab, err)
		}
	}

	if len(plan.Writes) > 0 {
		data := make([]*sheets.ValueRange, 0, len(plan.Writes))
		for _, w := range plan.Writes {
			data = append(data, &sheets.ValueRange{
				Range:  w.Range,
				Values: [][]any{w.Values},
			})
		}
		req := &sheets.BatchUpdateValuesRequest{
			ValueInputOption: valueInputOption,
			Data:             data,
		}
		_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheet: batch update %s: %w", tab, err)
		}
	}
	return nil
}

// Timestamp renders the Updated column value.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

package tasks

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/sheet"
	"football-lines-service/internal/state"
)

// Task names used in logs and metrics.
const (
	TaskPrefill  = "prefill"
	TaskLive     = "live-odds"
	TaskHalftime = "halftime"
	TaskFinals   = "finals"
)

// SheetWriter is the slice of the sheet client the tasks need.
type SheetWriter interface {
	Upsert(ctx context.Context, league domain.League, updates []sheet.RowUpdate) error
}

// LineResolver resolves the merged betting line for a game.
type LineResolver interface {
	Resolve(ctx context.Context, game domain.Game) domain.Line
}

// Runner executes the four sync tasks against a polled slate. Each task is
// idempotent: the state store remembers what has already been written so a
// poll cycle only touches rows that changed.
type Runner struct {
	sheet    SheetWriter
	resolver LineResolver
	state    state.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewRunner wires a Runner. A nil state store falls back to in-memory.
func NewRunner(writer SheetWriter, resolver LineResolver, st state.Store, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	if st == nil {
		st = state.NewMemoryStore()
	}
	return &Runner{
		sheet:    writer,
		resolver: resolver,
		state:    st,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Sync runs all four tasks against one slate, in lifecycle order. Task
// failures are logged and do not stop the remaining tasks; the first error is
// returned so the poll cycle can count it.
func (r *Runner) Sync(ctx context.Context, slate domain.Slate) error {
	var firstErr error
	run := func(task string, fn func(context.Context, domain.Slate) (int, error)) {
		rows, err := fn(ctx, slate)
		r.metrics.RecordTaskRun(task, rows, err)
		if err != nil {
			logging.Error(r.logger, "task failed", err,
				slog.String(logging.FieldTask, task),
				slog.String(logging.FieldLeague, string(slate.League)),
			)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		if rows > 0 {
			logging.Info(r.logger, "task wrote rows",
				slog.String(logging.FieldTask, task),
				slog.String(logging.FieldLeague, string(slate.League)),
				slog.Int(logging.FieldCount, rows),
			)
		}
	}

	run(TaskPrefill, r.Prefill)
	run(TaskLive, r.LiveOdds)
	run(TaskHalftime, r.Halftime)
	run(TaskFinals, r.Finals)
	return firstErr
}

// touch stamps the Updated cell on a row a task is about to write.
func (r *Runner) touch(u *sheet.RowUpdate) {
	u.Set(sheet.ColUpdated, sheet.Timestamp(r.now()))
}

func scoreCell(points int) string {
	return strconv.Itoa(points)
}

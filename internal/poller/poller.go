package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/logging"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/providers"
	"football-lines-service/internal/timeutil"
)

// SlateSyncer runs the sheet sync tasks against a polled slate.
type SlateSyncer interface {
	Sync(ctx context.Context, slate domain.Slate) error
}

// SnapshotWriter persists slate snapshots to disk for auditing.
type SnapshotWriter interface {
	WriteSlateSnapshot(date string, slate domain.Slate) error
}

// Poller fetches one league's scoreboard on an adaptive interval and hands
// each slate to the syncer. The wait between cycles tightens as games
// approach kickoff and halftime.
type Poller struct {
	league   domain.League
	provider providers.GameProvider
	syncer   SlateSyncer
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cadence  Cadence
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of one poll loop.
type Status struct {
	League              domain.League
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	NextInterval        time.Duration
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller for one league.
func New(league domain.League, provider providers.GameProvider, syncer SlateSyncer, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, cadence Cadence) *Poller {
	if cadence.Min <= 0 {
		cadence.Min = halftimeInterval
	}
	if cadence.Max <= 0 {
		cadence.Max = idleInterval
	}
	return &Poller{
		league:   league,
		provider: provider,
		syncer:   syncer,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		cadence:  cadence,
		now:      time.Now,
		done:     make(chan struct{}),
		status:   Status{League: league},
	}
}

// League returns the league this poller covers.
func (p *Poller) League() domain.League {
	return p.league
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started")
		// Initial cycle on boot so readiness does not wait a full interval.
		wait := p.cycle(ctx)
		timer := time.NewTimer(wait)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.logInfo("poller stopped")
				return
			case <-timer.C:
				timer.Reset(p.cycle(ctx))
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

// cycle runs one fetch-and-sync pass and returns the wait before the next.
func (p *Poller) cycle(ctx context.Context) time.Duration {
	start := time.Now()
	p.recordAttempt(start)

	today := timeutil.FormatDate(p.now().UTC())
	games, err := p.provider.FetchGames(ctx, p.league, today)
	if err != nil {
		p.metrics.RecordPollCycle(string(p.league), time.Since(start), err)
		p.recordFailure(err, start)
		p.logError("poll fetch failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		return p.retryInterval()
	}

	slate := domain.NewSlate(today, p.league, games)
	syncErr := p.runSync(ctx, slate)
	p.metrics.RecordPollCycle(string(p.league), time.Since(start), syncErr)

	if p.writer != nil {
		if writeErr := p.writer.WriteSlateSnapshot(today, slate); writeErr != nil {
			p.logError("slate snapshot write failed", writeErr)
		}
	}

	if syncErr != nil {
		p.recordFailure(syncErr, start)
	} else {
		p.recordSuccess(start)
	}
	p.logInfo("poll cycle complete",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return p.nextInterval(games)
}

func (p *Poller) runSync(ctx context.Context, slate domain.Slate) error {
	if p.syncer == nil {
		return nil
	}
	return p.syncer.Sync(ctx, slate)
}

// retryInterval is the wait after a failed fetch: the last computed cadence
// is kept, so a transient error inside the halftime window does not park the
// loop on the idle interval. Before any success it falls back to a clamped
// live-game beat.
func (p *Poller) retryInterval() time.Duration {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	if p.status.NextInterval <= 0 {
		p.status.NextInterval = p.cadence.clamp(liveInterval)
	}
	return p.status.NextInterval
}

func (p *Poller) nextInterval(games []domain.Game) time.Duration {
	wait := p.cadence.Next(games, p.now())
	p.statusMu.Lock()
	p.status.NextInterval = wait
	p.statusMu.Unlock()
	return wait
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		args = append(args, slog.String(logging.FieldLeague, string(p.league)))
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		attrs = append(attrs,
			slog.String(logging.FieldLeague, string(p.league)),
			slog.Any("error", err),
		)
		p.logger.Error(msg, attrs...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

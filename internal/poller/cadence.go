package poller

import (
	"strconv"
	"strings"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/timeutil"
)

// Cadence decides how long to wait before the next poll, based on where the
// slate is in its day. Quiet stretches poll slowly; the minutes around
// halftime poll hard because that is when the interesting numbers move.
type Cadence struct {
	Min time.Duration
	Max time.Duration
}

const (
	idleInterval        = 15 * time.Minute
	preKickoffInterval  = 10 * time.Minute
	nearKickoffWindow   = time.Hour
	nearKickoffInterval = 2 * time.Minute
	liveInterval        = time.Minute
	halftimeInterval    = 30 * time.Second

	// late second quarter counts as the halftime window
	lateQuarterClock = 5 * time.Minute
)

// Next returns the wait before the next poll for the given slate.
func (c Cadence) Next(games []domain.Game, now time.Time) time.Duration {
	return c.clamp(rawInterval(games, now))
}

func rawInterval(games []domain.Game, now time.Time) time.Duration {
	if len(games) == 0 {
		return idleInterval
	}

	allDone := true
	interval := idleInterval
	var nextKickoff time.Time

	for _, g := range games {
		if !g.Status.Terminal() {
			allDone = false
		}

		switch {
		case g.AtHalftime() || inLateSecondQuarter(g):
			return halftimeInterval
		case g.Status == domain.StatusInProgress:
			interval = min(interval, liveInterval)
		case g.Status == domain.StatusScheduled:
			if timeutil.UntilKickoff(g.Kickoff, now) >= 0 && (nextKickoff.IsZero() || g.Kickoff.Before(nextKickoff)) {
				nextKickoff = g.Kickoff
			}
		}
	}

	if allDone {
		return idleInterval
	}
	if interval < idleInterval {
		return interval
	}
	if !nextKickoff.IsZero() {
		if timeutil.WithinWindow(nextKickoff, now, nearKickoffWindow) {
			return nearKickoffInterval
		}
		return preKickoffInterval
	}
	return idleInterval
}

func (c Cadence) clamp(d time.Duration) time.Duration {
	if c.Min > 0 && d < c.Min {
		return c.Min
	}
	if c.Max > 0 && d > c.Max {
		return c.Max
	}
	return d
}

// inLateSecondQuarter reports whether the game clock is inside the final
// stretch of the second period.
func inLateSecondQuarter(g domain.Game) bool {
	if g.Status != domain.StatusInProgress || g.Period != 2 {
		return false
	}
	remaining, ok := parseClock(g.Clock)
	return ok && remaining <= lateQuarterClock
}

// parseClock turns a "M:SS" game clock into a duration.
func parseClock(clock string) (time.Duration, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, true
}

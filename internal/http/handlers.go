package http

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"football-lines-service/internal/domain"
	"football-lines-service/internal/metrics"
	"football-lines-service/internal/poller"
	"football-lines-service/internal/snapshots"
	"football-lines-service/internal/timeutil"
)

// Pollers is the slice of the orchestrator the handlers need.
type Pollers interface {
	Statuses() map[domain.League]poller.Status
	Ready() bool
}

type nowFunc func() time.Time

// Handler wires the admin HTTP routes to the running pollers and the
// snapshot store. This surface is operational only; the spreadsheet is the
// product.
type Handler struct {
	pollers Pollers
	store   snapshots.Store
	metrics *metrics.Recorder
	logger  *slog.Logger
	version string
	now     nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(pollers Pollers, store snapshots.Store, recorder *metrics.Recorder, logger *slog.Logger, version string) *Handler {
	return &Handler{
		pollers: pollers,
		store:   store,
		metrics: recorder,
		logger:  logger,
		version: version,
		now:     time.Now,
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready reports whether every league poller has had a recent success.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.pollers == nil || !h.pollers.Ready() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "pollers not ready")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

type leagueStatus struct {
	Ready               bool      `json:"ready"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt,omitempty"`
	LastSuccess         time.Time `json:"lastSuccess,omitempty"`
	NextIntervalSeconds float64   `json:"nextIntervalSeconds"`
}

type statusResponse struct {
	Time         time.Time               `json:"time"`
	Leagues      map[string]leagueStatus `json:"leagues"`
	SheetBatches int                     `json:"sheetBatches"`
	SheetCells   int                     `json:"sheetCells"`
}

// Status summarizes the health of every poll loop plus sheet write volume.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := statusResponse{
		Time:         h.now().UTC(),
		Leagues:      map[string]leagueStatus{},
		SheetBatches: h.metrics.SheetBatches(),
		SheetCells:   h.metrics.SheetCells(),
	}
	if h.pollers != nil {
		for league, st := range h.pollers.Statuses() {
			resp.Leagues[string(league)] = leagueStatus{
				Ready:               st.IsReady(),
				ConsecutiveFailures: st.ConsecutiveFailures,
				LastError:           st.LastError,
				LastAttempt:         st.LastAttempt,
				LastSuccess:         st.LastSuccess,
				NextIntervalSeconds: st.NextInterval.Seconds(),
			}
		}
	}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

// Slates serves the snapshot manifest: which audit dates exist per league.
func (h *Handler) Slates(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.store == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, h.store.Manifest())
}

// Slate serves an audit snapshot. Expect path: /slates/{league}/{date}.
func (h *Handler) Slate(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/slates/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		h.writeError(w, nethttp.StatusBadRequest, "expected /slates/{league}/{date}")
		return
	}

	league, err := domain.ParseLeague(parts[0])
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "unknown league")
		return
	}
	date := parts[1]
	if _, err := timeutil.ParseDate(date); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid date format")
		return
	}

	if h.store == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	slate, err := h.store.LoadSlate(league, date)
	if err != nil {
		if errors.Is(err, snapshots.ErrNotFound) {
			h.writeError(w, nethttp.StatusNotFound, "no slate for that date")
			return
		}
		h.writeError(w, nethttp.StatusInternalServerError, "failed to load slate")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, slate)
}

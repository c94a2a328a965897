package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderProviderStats(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("espn", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("espn", 80*time.Millisecond, errors.New("boom"))
	r.RecordProviderAttempt("scrape", 10*time.Millisecond, nil)
	r.RecordRateLimit("espn", 2*time.Second)

	if got := r.ProviderCalls("espn"); got != 2 {
		t.Errorf("ProviderCalls(espn) = %d, want 2", got)
	}
	if got := r.ProviderErrors("espn"); got != 1 {
		t.Errorf("ProviderErrors(espn) = %d, want 1", got)
	}
	if got := r.RateLimitHits("espn"); got != 1 {
		t.Errorf("RateLimitHits(espn) = %d, want 1", got)
	}
	snap := r.Snapshot("espn")
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Errorf("LastCallLatency = %v", snap.LastCallLatency)
	}
	if snap.LastRetryAfter != 2*time.Second {
		t.Errorf("LastRetryAfter = %v", snap.LastRetryAfter)
	}
	if got := r.ProviderCalls("unknown"); got != 0 {
		t.Errorf("ProviderCalls(unknown) = %d, want 0", got)
	}
}

func TestRecorderSheetAndTaskStats(t *testing.T) {
	r := NewRecorder()

	r.RecordSheetWrite(14, nil)
	r.RecordSheetWrite(3, errors.New("quota"))
	r.RecordTaskRun("prefill", 4, nil)
	r.RecordTaskRun("prefill", 0, nil)
	r.RecordTaskRun("finals", 2, nil)

	if got := r.SheetBatches(); got != 2 {
		t.Errorf("SheetBatches = %d, want 2", got)
	}
	if got := r.SheetCells(); got != 17 {
		t.Errorf("SheetCells = %d, want 17", got)
	}
	if got := r.TaskRuns("prefill"); got != 2 {
		t.Errorf("TaskRuns(prefill) = %d, want 2", got)
	}
	if got := r.TaskRuns("halftime"); got != 0 {
		t.Errorf("TaskRuns(halftime) = %d, want 0", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("espn", time.Second, nil)
	r.RecordRateLimit("espn", time.Second)
	r.RecordSheetWrite(1, nil)
	r.RecordTaskRun("live", 1, nil)
	r.RecordPollCycle("nfl", time.Second, nil)
	if r.ProviderCalls("espn") != 0 || r.SheetBatches() != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder when telemetry is disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	// Instruments are wired; recording must not panic.
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordPollCycle("nfl", time.Millisecond, nil)
	rec.RecordSheetWrite(5, nil)
	rec.RecordTaskRun("live", 1, nil)
	rec.RecordHTTPRequest("GET", "/status", 200, time.Millisecond)
}

package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksQueriesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordQuery("stats", 10*time.Millisecond, nil)
	rec.RecordQuery("stats", 15*time.Millisecond, errors.New("boom"))

	if got := rec.QueryCalls("stats"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.QueryErrors("stats"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastQueryLatency("stats"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("stats")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderKindsAreIndependent(t *testing.T) {
	rec := NewRecorder()
	rec.RecordQuery("stats", time.Millisecond, nil)
	rec.RecordQuery("filter", time.Millisecond, errors.New("boom"))

	if got := rec.QueryErrors("stats"); got != 0 {
		t.Fatalf("expected stats to have no errors, got %d", got)
	}
	if got := rec.QueryCalls("filter"); got != 1 {
		t.Fatalf("expected 1 filter call, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordQuery("stats", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if snap := rec.Snapshot("stats"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}

package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about catalog queries.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*queryStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*queryStats),
		otel:  otel,
	}
}

// RecordQuery increments counters for one catalog query kind and stores the
// last observed latency.
func (r *Recorder) RecordQuery(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(kind)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordQuery(kind, duration, err)
	}
}

// QueryCalls returns the total queries recorded for a kind.
func (r *Recorder) QueryCalls(kind string) int {
	return r.Snapshot(kind).Calls
}

// QueryErrors returns the total failed queries recorded for a kind.
func (r *Recorder) QueryErrors(kind string) int {
	return r.Snapshot(kind).Errors
}

// LastQueryLatency returns the last recorded latency for a query kind.
func (r *Recorder) LastQueryLatency(kind string) time.Duration {
	return r.Snapshot(kind).LastLatency
}

// Snapshot is a copy of the current stats for one query kind.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(kind)
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStats(kind string) *queryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok {
		stats = &queryStats{}
		r.stats[kind] = stats
	}
	return stats
}

func (r *Recorder) snapshot(kind string) queryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[kind]; ok && stats != nil {
		return *stats
	}
	return queryStats{}
}

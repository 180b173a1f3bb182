package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls       int
	failures    int
	lastFailure string
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about reservation operations
// and tool calls, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordOperation counts a service operation. An empty errorKind means success.
func (r *Recorder) RecordOperation(operation string, duration time.Duration, errorKind string) {
	if r == nil {
		return
	}

	r.update(operation, duration, errorKind)
	if r.otel != nil {
		r.otel.recordOperation(operation, duration, errorKind)
	}
}

// RecordToolCall counts a tool-protocol invocation.
func (r *Recorder) RecordToolCall(tool string, duration time.Duration, failed bool) {
	if r == nil {
		return
	}

	kind := ""
	if failed {
		kind = "error"
	}
	r.update("tool:"+tool, duration, kind)
	if r.otel != nil {
		r.otel.recordToolCall(tool, duration, failed)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// OperationCalls returns the total calls recorded for an operation.
func (r *Recorder) OperationCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// OperationFailures returns the failed calls recorded for an operation.
func (r *Recorder) OperationFailures(operation string) int {
	return r.Snapshot(operation).Failures
}

// Snapshot returns a copy of the current stats for an operation.
type Snapshot struct {
	Calls       int
	Failures    int
	LastFailure string
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Failures:    stats.failures,
		LastFailure: stats.lastFailure,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) update(operation string, duration time.Duration, errorKind string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if errorKind != "" {
		stats.failures++
		stats.lastFailure = errorKind
	}
}

package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/travel-reservations-service/internal/config"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
	"github.com/preston-bernstein/travel-reservations-service/internal/testutil"
	"github.com/preston-bernstein/travel-reservations-service/internal/tracing"
)

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder on setup failure")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on failure")
	}
}

func TestBuildMetricsDisabledSkipsServer(t *testing.T) {
	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: false}}, nil)
	if rec == nil {
		t.Fatalf("expected recorder even when metrics disabled")
	}
	if srv != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
	if err := stop(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestBuildMetricsSuccessPathSetsServer(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()

	var gotCfg metrics.TelemetryConfig
	metricsSetup = func(_ context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		gotCfg = cfg
		rec, shutdown := testutil.NewRecorderWithShutdown()
		return rec, http.NewServeMux(), shutdown, nil
	}

	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "9999", ServiceName: "svc"}}
	_, srv, stop := buildMetrics(cfg, nil)
	if srv == nil || srv.Addr() != ":9999" {
		t.Fatalf("expected metrics server on :9999")
	}
	if stop == nil {
		t.Fatalf("expected shutdown function")
	}
	if gotCfg.ServiceName != "svc" {
		t.Fatalf("expected config passthrough, got %+v", gotCfg)
	}
}

func TestBuildTracingFailureDegrades(t *testing.T) {
	orig := tracingSetup
	defer func() { tracingSetup = orig }()
	tracingSetup = func(context.Context, tracing.Config) (func(context.Context) error, error) {
		return nil, errors.New("no exporter")
	}

	if stop := buildTracing(context.Background(), config.Config{Tracing: config.TracingConfig{Enabled: true}}, nil); stop != nil {
		t.Fatalf("expected nil shutdown on failure")
	}
}

func TestNewShutsDownTelemetryWhenBackendFails(t *testing.T) {
	origMetrics, origTracing, origRedis := metricsSetup, tracingSetup, newRedisStore
	defer func() { metricsSetup, tracingSetup, newRedisStore = origMetrics, origTracing, origRedis }()

	var stopped []string
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), nil, func(context.Context) error { stopped = append(stopped, "metrics"); return nil }, nil
	}
	tracingSetup = func(context.Context, tracing.Config) (func(context.Context) error, error) {
		return func(context.Context) error { stopped = append(stopped, "tracing"); return nil }, nil
	}
	newRedisStore = failingRedisStore

	cfg := config.Config{Store: config.StoreConfig{Backend: config.BackendRedis}}
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected backend error")
	}
	if len(stopped) != 2 {
		t.Fatalf("expected telemetry shutdown, got %v", stopped)
	}
}

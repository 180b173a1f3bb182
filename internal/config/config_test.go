package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/travel-reservations-service/internal/snapshots"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envPort, envDataFile, envStoreBackend, envRedisAddr, envRedisPassword, envRedisDB,
		envRedisKey, envAMQPURL, envAMQPQueue, envMetricsPort, envMetricsOn, envTracingOn,
		envOtelEndpoint, envOtelService, envOtelInsecure, envLogLevel, envLogFormat, envEnvFile,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Store.Backend != BackendFile {
		t.Fatalf("expected file backend by default, got %s", cfg.Store.Backend)
	}
	if cfg.Store.DataFile != defaultDataFile {
		t.Fatalf("expected default data file %s, got %s", defaultDataFile, cfg.Store.DataFile)
	}
	if cfg.Store.Redis.Key != defaultRedisKey || cfg.Store.Redis.DB != 0 {
		t.Fatalf("unexpected redis defaults %+v", cfg.Store.Redis)
	}
	if cfg.Events.AMQPURL != "" || cfg.Events.Queue != defaultAMQPQueue {
		t.Fatalf("unexpected events defaults %+v", cfg.Events)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Tracing.Enabled {
		t.Fatalf("expected tracing disabled by default")
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envDataFile, "/tmp/hotel.json")
	t.Setenv(envStoreBackend, "Redis")
	t.Setenv(envRedisAddr, "cache:6379")
	t.Setenv(envRedisDB, "3")
	t.Setenv(envRedisKey, "custom")
	t.Setenv(envAMQPURL, "amqp://guest:guest@mq:5672/")
	t.Setenv(envAMQPQueue, "bookings")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envTracingOn, "true")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Store.DataFile != "/tmp/hotel.json" {
		t.Fatalf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Store.Redis.Addr != "cache:6379" || cfg.Store.Redis.DB != 3 || cfg.Store.Redis.Key != "custom" {
		t.Fatalf("unexpected redis config %+v", cfg.Store.Redis)
	}
	if cfg.Events.AMQPURL != "amqp://guest:guest@mq:5672/" || cfg.Events.Queue != "bookings" {
		t.Fatalf("unexpected events config %+v", cfg.Events)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected tracing config %+v", cfg.Tracing)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadUnknownBackendFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(envStoreBackend, "postgres")

	if got := Load().Store.Backend; got != BackendFile {
		t.Fatalf("expected fallback to file backend, got %s", got)
	}
}

func TestLoadInvalidRedisDBFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRedisDB, "-2")

	if got := Load().Store.Redis.DB; got != 0 {
		t.Fatalf("expected redis db 0 on invalid value, got %d", got)
	}
}

func TestLoadDotEnvSetsMissingVariables(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DOTENV_ONLY_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envEnvFile, path)
	t.Setenv("DOTENV_ONLY_KEY", "")
	os.Unsetenv("DOTENV_ONLY_KEY")

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("DOTENV_ONLY_KEY"); got != "from-file" {
		t.Fatalf("expected value from env file, got %q", got)
	}
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(envEnvFile, filepath.Join(t.TempDir(), "absent.env"))

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestDefaultDataFileIsShippedSeedCatalog(t *testing.T) {
	clearEnv(t)
	path := filepath.Join("..", "..", Load().Store.DataFile)

	snap, err := snapshots.NewFSStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load seed catalog %s: %v", path, err)
	}
	if len(snap.Rooms) == 0 {
		t.Fatalf("expected seeded rooms in %s", path)
	}
	if len(snap.Reservations) != 0 {
		t.Fatalf("expected seed catalog without reservations, got %d", len(snap.Reservations))
	}
}

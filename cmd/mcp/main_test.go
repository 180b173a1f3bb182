package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunAnswersInitializeAndExitsOnEOF(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("TRACING_ENABLED", "false")

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}` + "\n")
	var out, errOut bytes.Buffer

	if code := run(context.Background(), in, &out, &errOut); code != 0 {
		t.Fatalf("expected clean exit, got %d (logs: %s)", code, errOut.String())
	}
	if !strings.Contains(out.String(), "travel-reservations-server") {
		t.Fatalf("expected initialize response on stdout, got %q", out.String())
	}
	if strings.Contains(out.String(), "level=") {
		t.Fatalf("logs leaked onto stdout: %q", out.String())
	}
}

func TestRunFailsWhenRedisUnreachable(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")

	var out, errOut bytes.Buffer
	if code := run(context.Background(), strings.NewReader(""), &out, &errOut); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

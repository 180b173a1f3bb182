package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger captures text-format log lines, debug level included, for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

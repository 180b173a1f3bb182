package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/snapshots"
)

// NewTempFSStore returns a file store in a temp dir seeded with snap.
func NewTempFSStore(t *testing.T, snap domain.Snapshot) *snapshots.FSStore {
	t.Helper()
	st := snapshots.NewFSStore(filepath.Join(t.TempDir(), "data.json"))
	if err := st.Save(context.Background(), snap); err != nil {
		t.Fatalf("failed to seed snapshot file: %v", err)
	}
	return st
}

// ReadFile returns the raw bytes at path, failing the test on error.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}

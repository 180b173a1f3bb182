package snapshots

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

func encode(snap domain.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap.Normalize(), "", "  ")
}

// writeFileAtomic replaces target with data via a sibling temp file and rename,
// so readers never observe a half-written document.
func writeFileAtomic(target string, data []byte) error {
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

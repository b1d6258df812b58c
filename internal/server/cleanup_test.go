package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSweepRemovesOnlyExpiredFiles(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "old_1000000000.mp4")
	fresh := filepath.Join(dir, "fresh_1700000000.mp4")
	for _, path := range []string{old, fresh} {
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatal(err)
	}

	// Files in subdirectories are out of scope for the sweeper.
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	s := newSweeper(dir, 24*time.Hour)
	s.sweep()

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("expired file was not removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh file should survive the sweep")
	}
	if _, err := os.Stat(sub); err != nil {
		t.Error("directories should survive the sweep")
	}
}

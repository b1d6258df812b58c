package server

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

const sweepInterval = 10 * time.Minute

// sweeper removes downloaded files once they outlive the configured
// retention. Downloads are left on disk after streaming, so without it
// the directory grows without bound.
type sweeper struct {
	dir    string
	maxAge time.Duration
	ticker *time.Ticker
	done   chan struct{}
}

func newSweeper(dir string, maxAge time.Duration) *sweeper {
	return &sweeper{
		dir:    dir,
		maxAge: maxAge,
		done:   make(chan struct{}),
	}
}

func (s *sweeper) start() {
	s.ticker = time.NewTicker(sweepInterval)
	go s.loop()
}

func (s *sweeper) stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
}

func (s *sweeper) loop() {
	for {
		select {
		case <-s.ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

// sweep removes regular files older than the retention cutoff. Files
// still being written keep a fresh mtime, so in-flight downloads are
// never touched.
func (s *sweeper) sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("retention sweep failed: %v", err)
		return
	}

	cutoff := time.Now().Add(-s.maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(s.dir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("retention sweep: failed to remove %s: %v", path, err)
				continue
			}
			log.Printf("retention sweep: removed %s", path)
		}
	}
}

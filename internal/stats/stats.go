package stats

import (
	"sync"
	"time"

	"github.com/five82/spyglass/internal/stream"
)

// SourceStats summarizes traffic observed on a single source.
type SourceStats struct {
	Writes int64
	Bytes  int64
}

// Snapshot represents the latest capture statistics available to the UI.
type Snapshot struct {
	Stdout    SourceStats
	Stderr    SourceStats
	Manual    SourceStats
	Other     SourceStats
	LastWrite time.Time
}

// TotalBytes reports bytes seen across every source.
func (s Snapshot) TotalBytes() int64 {
	return s.Stdout.Bytes + s.Stderr.Bytes + s.Manual.Bytes + s.Other.Bytes
}

// TotalWrites reports writes seen across every source.
func (s Snapshot) TotalWrites() int64 {
	return s.Stdout.Writes + s.Stderr.Writes + s.Manual.Writes + s.Other.Writes
}

// Store coordinates concurrent updates to the statistics. The capture pumps
// record from their own goroutines while the UI reads snapshots on its tick.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Record notes one write of n bytes from the given source.
func (s *Store) Record(source stream.Source, n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *SourceStats
	switch source {
	case stream.Stdout:
		target = &s.snapshot.Stdout
	case stream.Stderr:
		target = &s.snapshot.Stderr
	case stream.Manual:
		target = &s.snapshot.Manual
	default:
		target = &s.snapshot.Other
	}
	target.Writes++
	target.Bytes += int64(n)
	s.snapshot.LastWrite = time.Now()
}

// Snapshot returns a copy of the current statistics.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Reset zeroes all counters, e.g. when the pane is cleared.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
}

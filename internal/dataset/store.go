// Package dataset holds the in-memory order record set. The set is the sole
// source of truth: uploads and refreshes replace it wholesale, readers always
// see a complete snapshot, and nothing ever patches records in place.
package dataset

import (
	"sync/atomic"
	"time"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// Snapshot is one immutable generation of the record set. Version increases
// with every replacement; cache keys include it so stale derived views can
// never be served against a newer snapshot.
type Snapshot struct {
	Records  []domain.Order
	Version  uint64
	LoadedAt time.Time
}

// Store publishes snapshots by reference. Replace swaps the pointer
// atomically, so a reader holding the previous snapshot keeps computing
// against a consistent record set.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{LoadedAt: time.Now()})
	return s
}

// Snapshot returns the current generation. Never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace installs records as the new record set and returns the new
// snapshot.
func (s *Store) Replace(records []domain.Order) *Snapshot {
	snap := &Snapshot{
		Records:  records,
		Version:  s.version.Add(1),
		LoadedAt: time.Now(),
	}
	s.current.Store(snap)
	return snap
}

// Clear drops all records, as a wholesale replacement with an empty set.
func (s *Store) Clear() *Snapshot {
	return s.Replace(nil)
}

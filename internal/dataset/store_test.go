package dataset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

func TestNewStoreStartsEmpty(t *testing.T) {
	s := NewStore()

	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Records)
	assert.Zero(t, snap.Version)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestReplaceBumpsVersion(t *testing.T) {
	s := NewStore()

	first := s.Replace([]domain.Order{{OrderID: "a"}})
	assert.Equal(t, uint64(1), first.Version)

	second := s.Replace([]domain.Order{{OrderID: "b"}, {OrderID: "c"}})
	assert.Equal(t, uint64(2), second.Version)
	assert.Len(t, second.Records, 2)

	assert.Same(t, second, s.Snapshot())
}

func TestReaderKeepsOldSnapshot(t *testing.T) {
	s := NewStore()
	s.Replace([]domain.Order{{OrderID: "old"}})

	held := s.Snapshot()
	s.Replace([]domain.Order{{OrderID: "new"}})

	// The held generation is unaffected by the replacement.
	require.Len(t, held.Records, 1)
	assert.Equal(t, "old", held.Records[0].OrderID)
	assert.Equal(t, "new", s.Snapshot().Records[0].OrderID)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Replace([]domain.Order{{OrderID: "a"}})

	snap := s.Clear()
	assert.Empty(t, snap.Records)
	assert.Equal(t, uint64(2), snap.Version)
}

func TestConcurrentReplaceVersionsAreUnique(t *testing.T) {
	s := NewStore()

	const n = 50
	var wg sync.WaitGroup
	versions := make(chan uint64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			versions <- s.Replace(nil).Version
		}()
	}
	wg.Wait()
	close(versions)

	seen := make(map[uint64]bool, n)
	for v := range versions {
		assert.False(t, seen[v], "duplicate version %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)
}

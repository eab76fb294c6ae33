package memory

import (
	"sync"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
)

// SnapshotStore holds the latest refresher pass. Before the first pass
// completes, Latest reports false and the dashboard renders its loading
// state.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap match.Snapshot
	ok   bool
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Set(snap match.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.ok = true
	s.mu.Unlock()
}

func (s *SnapshotStore) Latest() (match.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.ok
}

package flowstate

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/flow"
)

type memoryEntry struct {
	data      []byte
	version   int64
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса (без Redis)
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, state *flow.State) error {
	state.Version = 1
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[state.ID] = memoryEntry{data: data, version: state.Version, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*flow.State, error) {
	s.mu.Lock()
	entry, ok := s.lookup(id)
	s.mu.Unlock()

	if !ok {
		return nil, flow.ErrNotFound
	}

	var state flow.State
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *MemoryStore) Save(_ context.Context, state *flow.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(state.ID)
	if !ok {
		return flow.ErrNotFound
	}
	if entry.version != state.Version {
		return flow.ErrConflict
	}

	state.Version++
	data, err := json.Marshal(state)
	if err != nil {
		state.Version--
		return err
	}

	s.entries[state.ID] = memoryEntry{data: data, version: state.Version, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(id); !ok {
		return flow.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// lookup вызывается под s.mu, истёкшие записи удаляются
func (s *MemoryStore) lookup(id string) (memoryEntry, bool) {
	entry, ok := s.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return memoryEntry{}, false
	}
	return entry, true
}

// In-memory run history.
//
// Information Hiding:
// - Map storage structure hidden from users
// - Thread-safe access via RWMutex hidden behind interface
// - Suitable for testing and ephemeral sessions

package storage

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStorage implements HistoryStore using an in-memory map.
// Data is lost when process terminates.
type InMemoryStorage struct {
	mu    sync.RWMutex
	runs  map[string]RunRecord
	order []string // insertion order, oldest first
}

// NewInMemoryStorage creates a new in-memory storage.
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		runs: make(map[string]RunRecord),
	}
}

// Save stores a copy of rec. Saving an existing ID replaces it and makes
// it the most recent entry.
func (s *InMemoryStorage) Save(ctx context.Context, rec RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ArgsHash == "" {
		rec.ArgsHash = HashArgs(rec.Args)
	}
	if _, ok := s.runs[rec.ID]; ok {
		s.removeFromOrder(rec.ID)
	}
	s.runs[rec.ID] = cloneRecord(rec)
	s.order = append(s.order, rec.ID)
	return nil
}

// Get returns a copy of the run with the given ID.
func (s *InMemoryStorage) Get(ctx context.Context, id string) (RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.runs[id]
	if !ok {
		return RunRecord{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return cloneRecord(rec), nil
}

// Latest returns the most recently saved run with exactly these arguments.
func (s *InMemoryStorage) Latest(ctx context.Context, args []string) (RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash := HashArgs(args)
	for i := len(s.order) - 1; i >= 0; i-- {
		rec := s.runs[s.order[i]]
		if rec.ArgsHash == hash && sameArgs(rec.Args, args) {
			return cloneRecord(rec), nil
		}
	}
	return RunRecord{}, ErrRunNotFound
}

// List returns up to limit runs, most recently saved first.
func (s *InMemoryStorage) List(ctx context.Context, limit int) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := []RunRecord{}
	for i := len(s.order) - 1; i >= 0; i-- {
		if limit > 0 && len(runs) == limit {
			break
		}
		runs = append(runs, cloneRecord(s.runs[s.order[i]]))
	}
	return runs, nil
}

// Delete removes a run.
func (s *InMemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	delete(s.runs, id)
	s.removeFromOrder(id)
	return nil
}

// Close is a no-op.
func (s *InMemoryStorage) Close() error { return nil }

func (s *InMemoryStorage) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// cloneRecord copies the slices so callers cannot mutate stored data.
func cloneRecord(rec RunRecord) RunRecord {
	rec.Args = append([]string(nil), rec.Args...)
	rec.Stdout = append([]byte(nil), rec.Stdout...)
	rec.Stderr = append([]byte(nil), rec.Stderr...)
	return rec
}

// Verify InMemoryStorage implements HistoryStore
var _ HistoryStore = (*InMemoryStorage)(nil)

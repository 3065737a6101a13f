package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
)

// Store is an in-memory implementation of store.Store for tests.
// Rows are returned in insertion order.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*table
	failure  error
}

type table struct {
	order []string
	rows  map[string]store.Row
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{datasets: make(map[string]*table)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SetFailure makes every subsequent Scan and Put fail as if the backing
// store were unreachable. Passing nil restores normal operation.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Put stores a copy of the row, replacing any previous row with the same key.
func (s *Store) Put(ctx context.Context, dataset string, row store.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return fmt.Errorf("put %s: %w: %w", dataset, internalerr.ErrStoreUnavailable, s.failure)
	}
	if row.Key == "" {
		return fmt.Errorf("put %s: empty row key: %w", dataset, internalerr.ErrInvalidInput)
	}

	t, ok := s.datasets[dataset]
	if !ok {
		t = &table{rows: make(map[string]store.Row)}
		s.datasets[dataset] = t
	}
	if _, exists := t.rows[row.Key]; !exists {
		t.order = append(t.order, row.Key)
	}
	t.rows[row.Key] = copyRow(row)
	return nil
}

// Scan returns copies of all rows in insertion order.
func (s *Store) Scan(ctx context.Context, dataset string) ([]store.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, fmt.Errorf("scan %s: %w: %w", dataset, internalerr.ErrStoreUnavailable, s.failure)
	}
	t, ok := s.datasets[dataset]
	if !ok {
		return nil, nil
	}
	out := make([]store.Row, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, copyRow(t.rows[key]))
	}
	return out, nil
}

func copyRow(r store.Row) store.Row {
	cols := make(map[string]string, len(r.Columns))
	for k, v := range r.Columns {
		cols[k] = v
	}
	return store.Row{Key: r.Key, Columns: cols}
}

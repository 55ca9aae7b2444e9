package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/cognicore/pantry/pkg/pantry/internalerr"
	"github.com/cognicore/pantry/pkg/pantry/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
	// source -> fingerprint -> record ID
	fpIndex map[string]map[uint64]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]store.Record),
		fpIndex: make(map[string]map[uint64]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutRecord inserts or updates a record, keyed by source and fingerprint.
func (s *Store) PutRecord(ctx context.Context, r store.Record) (store.Record, error) {
	if r.Source == "" {
		return store.Record{}, errors.Wrap(internalerr.ErrInvalidInput, "record source is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bySource, ok := s.fpIndex[r.Source]
	if !ok {
		bySource = make(map[uint64]string)
		s.fpIndex[r.Source] = bySource
	}

	if existingID, ok := bySource[r.Fingerprint]; ok {
		existing := s.records[existingID]
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
	} else {
		if r.ID == "" {
			r.ID = store.NewID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = time.Now().UTC()
		}
		bySource[r.Fingerprint] = r.ID
	}

	s.records[r.ID] = r
	return r, nil
}

// GetRecord returns a record by ID.
func (s *Store) GetRecord(ctx context.Context, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.records[id]; ok {
		return r, nil
	}
	return store.Record{}, errors.Wrapf(internalerr.ErrNotFound, "record %s", id)
}

// ListBySource returns a source's records in line order.
func (s *Store) ListBySource(ctx context.Context, source string) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Record
	for _, id := range s.fpIndex[source] {
		out = append(out, s.records[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// HasFingerprint reports whether a line with fp was stored for source.
func (s *Store) HasFingerprint(ctx context.Context, source string, fp uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.fpIndex[source][fp]
	return ok, nil
}

// UnitCounts counts records per canonical unit.
func (s *Store) UnitCounts(ctx context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.records {
		counts[r.Unit()]++
	}
	return counts, nil
}

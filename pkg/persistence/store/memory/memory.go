package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ucsb-cs156/crudapi/pkg/persistence"
)

type Store[K comparable, T any] struct {
	lock   sync.Mutex
	schema persistence.Schema[K, T]
	data   map[K]T
	seq    int64
}

func NewStore[K comparable, T any](schema persistence.Schema[K, T]) *Store[K, T] {
	return &Store[K, T]{
		lock:   sync.Mutex{},
		schema: schema,
		data:   make(map[K]T),
	}
}

// NewStoreFrom restores a store from a previous Snapshot.
func NewStoreFrom[K comparable, T any](schema persistence.Schema[K, T], seq int64, records []T) *Store[K, T] {
	s := NewStore(schema)
	s.seq = seq
	for i := range records {
		s.data[schema.Key(&records[i])] = records[i]
	}
	return s
}

func (s *Store[K, T]) FindAll(ctx context.Context) ([]T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	result := make([]T, 0, len(s.data))
	for _, val := range s.data {
		result = append(result, val)
	}

	return result, nil
}

func (s *Store[K, T]) FindByKey(ctx context.Context, key K) (T, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	val, exist := s.data[key]
	return val, exist, nil
}

func (s *Store[K, T]) Save(ctx context.Context, record *T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.schema.Unassigned(record) {
		if !s.schema.AutoKey {
			return fmt.Errorf("could not save %s: %w", s.schema.Kind, persistence.ErrMissingKey)
		}
		s.seq++
		s.schema.AssignKey(record, s.seq)
	} else if id, ok := any(s.schema.Key(record)).(int64); ok && s.schema.AutoKey && id > s.seq {
		s.seq = id // keep explicitly keyed rows clear of the sequence
	}

	s.data[s.schema.Key(record)] = *record
	return nil
}

func (s *Store[K, T]) Delete(ctx context.Context, record T) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.data, s.schema.Key(&record))
	return nil
}

// Snapshot returns the key sequence and a copy of every record.
func (s *Store[K, T]) Snapshot() (int64, []T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	records := make([]T, 0, len(s.data))
	for _, val := range s.data {
		records = append(records, val)
	}
	return s.seq, records
}

func (s *Store[K, T]) Close() error {
	return nil
}

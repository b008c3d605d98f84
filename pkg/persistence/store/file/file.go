package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/ucsb-cs156/crudapi/pkg/persistence"
	"github.com/ucsb-cs156/crudapi/pkg/persistence/store/memory"
)

// Store keeps records in memory and rewrites a JSON document on every
// mutation. Writes go through a temporary file and a rename.
type Store[K comparable, T any] struct {
	lock     sync.Mutex
	fileName string
	mem      *memory.Store[K, T]
}

type document[T any] struct {
	Sequence int64 `json:"sequence"`
	Records  []T   `json:"records"`
}

func NewStore[K comparable, T any](fileName string, schema persistence.Schema[K, T]) (*Store[K, T], error) {
	doc := document[T]{}

	data, err := os.ReadFile(fileName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse storage file %s: %w", fileName, err)
		}
	}

	return &Store[K, T]{
		lock:     sync.Mutex{},
		fileName: fileName,
		mem:      memory.NewStoreFrom(schema, doc.Sequence, doc.Records),
	}, nil
}

func (s *Store[K, T]) FindAll(ctx context.Context) ([]T, error) {
	return s.mem.FindAll(ctx)
}

func (s *Store[K, T]) FindByKey(ctx context.Context, key K) (T, bool, error) {
	return s.mem.FindByKey(ctx, key)
}

func (s *Store[K, T]) Save(ctx context.Context, record *T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.mem.Save(ctx, record); err != nil {
		return err
	}
	return s.flush()
}

func (s *Store[K, T]) Delete(ctx context.Context, record T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.mem.Delete(ctx, record); err != nil {
		return err
	}
	return s.flush()
}

func (s *Store[K, T]) flush() error {
	seq, records := s.mem.Snapshot()
	data, err := json.Marshal(document[T]{Sequence: seq, Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.fileName), filepath.Base(s.fileName)+".*")
	if err != nil {
		return fmt.Errorf("failed to create storage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.fileName); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func (s *Store[K, T]) Close() error {
	return nil
}

package persistence

import (
	"context"
	"errors"
)

var (
	ErrMissingKey = errors.New("record key is not assigned")
)

// Repository gives row level access to the records of one entity kind.
// Every call is atomic for the row it touches; nothing spans calls.
type Repository[K comparable, T any] interface {
	FindAll(ctx context.Context) ([]T, error)               // every record, in store order
	FindByKey(ctx context.Context, key K) (T, bool, error) // false when no record has key
	Save(ctx context.Context, record *T) error             // insert or overwrite, assigns surrogate keys
	Delete(ctx context.Context, record T) error            // delete the row keyed by record
}

// Schema maps an entity onto a row: one key column followed by Columns.
type Schema[K comparable, T any] struct {
	Kind      string
	Table     string
	KeyColumn string
	Columns   []string

	// AutoKey marks surrogate keys assigned by the store on first save.
	// Records whose key is the zero value are then inserted as new rows.
	AutoKey bool

	Key       func(record *T) K
	AssignKey func(record *T, id int64)
	Values    func(record *T) []any // non-key values, in Columns order
	Fields    func(record *T) []any // scan destinations: key, then Columns
}

// Unassigned reports whether record still carries the zero key.
func (s Schema[K, T]) Unassigned(record *T) bool {
	var zero K
	return s.Key(record) == zero
}

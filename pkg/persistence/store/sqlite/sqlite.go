package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ucsb-cs156/crudapi/pkg/persistence"

	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database at dsn. ":memory:" yields a private
// in-memory database.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single connection serialises writers and keeps ":memory:" databases
	// from being opened once per connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	return db, nil
}

// Store is a persistence.Repository over one table.
type Store[K comparable, T any] struct {
	db     *sql.DB
	schema persistence.Schema[K, T]

	selectAll string
	selectOne string
	insert    string
	upsert    string
	remove    string
}

// NewStore prepares the statements for schema and creates its table from ddl
// when it does not exist yet.
func NewStore[K comparable, T any](ctx context.Context, db *sql.DB, schema persistence.Schema[K, T], ddl string) (*Store[K, T], error) {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", schema.Table, err)
	}

	all := append([]string{schema.KeyColumn}, schema.Columns...)
	updates := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	return &Store[K, T]{
		db:     db,
		schema: schema,
		selectAll: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
			strings.Join(all, ", "), schema.Table, schema.KeyColumn),
		selectOne: fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
			strings.Join(all, ", "), schema.Table, schema.KeyColumn),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			schema.Table, strings.Join(schema.Columns, ", "), placeholders(len(schema.Columns))),
		upsert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO UPDATE SET %s",
			schema.Table, strings.Join(all, ", "), placeholders(len(all)), schema.KeyColumn, strings.Join(updates, ", ")),
		remove: fmt.Sprintf("DELETE FROM %s WHERE %s = ?", schema.Table, schema.KeyColumn),
	}, nil
}

func (s *Store[K, T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.selectAll)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.schema.Table, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var record T
		if err := rows.Scan(s.schema.Fields(&record)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.schema.Kind, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", s.schema.Table, err)
	}
	return records, nil
}

func (s *Store[K, T]) FindByKey(ctx context.Context, key K) (T, bool, error) {
	var record T
	err := s.db.QueryRowContext(ctx, s.selectOne, key).Scan(s.schema.Fields(&record)...)
	if errors.Is(err, sql.ErrNoRows) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("failed to get %s: %w", s.schema.Kind, err)
	}
	return record, true, nil
}

func (s *Store[K, T]) Save(ctx context.Context, record *T) error {
	if s.schema.Unassigned(record) {
		if !s.schema.AutoKey {
			return fmt.Errorf("could not save %s: %w", s.schema.Kind, persistence.ErrMissingKey)
		}

		res, err := s.db.ExecContext(ctx, s.insert, s.schema.Values(record)...)
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", s.schema.Kind, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read assigned %s key: %w", s.schema.Kind, err)
		}
		s.schema.AssignKey(record, id)
		return nil
	}

	args := append([]any{s.schema.Key(record)}, s.schema.Values(record)...)
	if _, err := s.db.ExecContext(ctx, s.upsert, args...); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.schema.Kind, err)
	}
	return nil
}

func (s *Store[K, T]) Delete(ctx context.Context, record T) error {
	if _, err := s.db.ExecContext(ctx, s.remove, s.schema.Key(&record)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.schema.Kind, err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ucsb-cs156/crudapi/internal/config"
	"github.com/ucsb-cs156/crudapi/internal/model"
	"github.com/ucsb-cs156/crudapi/pkg/persistence"
	"github.com/ucsb-cs156/crudapi/pkg/persistence/store/file"
	"github.com/ucsb-cs156/crudapi/pkg/persistence/store/memory"
	"github.com/ucsb-cs156/crudapi/pkg/persistence/store/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverFile   = "file"
)

// Repositories holds one store per entity kind, all backed by the same driver.
type Repositories struct {
	Books       persistence.Repository[int64, model.Book]
	Dogs        persistence.Repository[string, model.Dog]
	Restaurants persistence.Repository[int64, model.Restaurant]

	db *sql.DB
}

func Open(ctx context.Context, cfg *config.Store) (*Repositories, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return openSQLite(ctx, cfg.DSN)
	case DriverMemory:
		return NewInMemory(), nil
	case DriverFile:
		return openFiles(cfg.DSN)
	}
	return nil, fmt.Errorf("unknown store driver: %q", cfg.Driver)
}

func NewInMemory() *Repositories {
	return &Repositories{
		Books:       memory.NewStore(BookSchema),
		Dogs:        memory.NewStore(DogSchema),
		Restaurants: memory.NewStore(RestaurantSchema),
	}
}

func openSQLite(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sqlite.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{db: db}
	if repos.Books, err = sqlite.NewStore(ctx, db, BookSchema, booksDDL); err != nil {
		db.Close()
		return nil, err
	}
	if repos.Dogs, err = sqlite.NewStore(ctx, db, DogSchema, dogsDDL); err != nil {
		db.Close()
		return nil, err
	}
	if repos.Restaurants, err = sqlite.NewStore(ctx, db, RestaurantSchema, restaurantsDDL); err != nil {
		db.Close()
		return nil, err
	}
	return repos, nil
}

// openFiles keeps one JSON document per kind inside the directory dir.
func openFiles(dir string) (*Repositories, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	var (
		repos = &Repositories{}
		err   error
	)
	if repos.Books, err = file.NewStore(filepath.Join(dir, BookSchema.Table+".json"), BookSchema); err != nil {
		return nil, err
	}
	if repos.Dogs, err = file.NewStore(filepath.Join(dir, DogSchema.Table+".json"), DogSchema); err != nil {
		return nil, err
	}
	if repos.Restaurants, err = file.NewStore(filepath.Join(dir, RestaurantSchema.Table+".json"), RestaurantSchema); err != nil {
		return nil, err
	}
	return repos, nil
}

// Ping reports whether the backing database is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

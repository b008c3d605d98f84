package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ucsb-cs156/crudapi/internal/config"
	"github.com/ucsb-cs156/crudapi/internal/model"
)

func TestOpenDrivers(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Store
	}{
		{name: "sqlite", cfg: config.Store{Driver: DriverSQLite, DSN: ":memory:"}},
		{name: "memory", cfg: config.Store{Driver: DriverMemory}},
		{name: "file", cfg: config.Store{Driver: DriverFile, DSN: filepath.Join(t.TempDir(), "data")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repos, err := Open(ctx, &tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			defer repos.Close()

			if err := repos.Ping(ctx); err != nil {
				t.Fatalf("unexpected ping error: %s", err.Error())
			}

			book := &model.Book{Title: "1984", Author: "George Orwell", Year: "1949"}
			if err := repos.Books.Save(ctx, book); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if book.ID == 0 {
				t.Fatal("expected book to receive a key")
			}
			got, ok, err := repos.Books.FindByKey(ctx, book.ID)
			if err != nil || !ok || got != *book {
				t.Fatalf("expected %+v, but got: %+v ok=%v err=%v", *book, got, ok, err)
			}

			dog := &model.Dog{Name: "Annie", Breed: "Poodle", Gender: "Female"}
			if err := repos.Dogs.Save(ctx, dog); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			dogs, err := repos.Dogs.FindAll(ctx)
			if err != nil || len(dogs) != 1 || dogs[0] != *dog {
				t.Fatalf("expected [%+v], but got: %+v err=%v", *dog, dogs, err)
			}

			restaurant := &model.Restaurant{Name: "Restaurant 1", Description: "Description 1"}
			if err := repos.Restaurants.Save(ctx, restaurant); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if err := repos.Restaurants.Delete(ctx, *restaurant); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if _, ok, _ := repos.Restaurants.FindByKey(ctx, restaurant.ID); ok {
				t.Fatal("expected restaurant to be deleted")
			}
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), &config.Store{Driver: "postgres"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

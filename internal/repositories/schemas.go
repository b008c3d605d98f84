package repositories

import (
	"github.com/ucsb-cs156/crudapi/internal/model"
	"github.com/ucsb-cs156/crudapi/pkg/persistence"
)

var BookSchema = persistence.Schema[int64, model.Book]{
	Kind:      model.KindBook,
	Table:     "books",
	KeyColumn: "id",
	Columns:   []string{"title", "author", "year"},
	AutoKey:   true,
	Key:       (*model.Book).Key,
	AssignKey: (*model.Book).AssignKey,
	Values: func(b *model.Book) []any {
		return []any{b.Title, b.Author, b.Year}
	},
	Fields: func(b *model.Book) []any {
		return []any{&b.ID, &b.Title, &b.Author, &b.Year}
	},
}

var DogSchema = persistence.Schema[string, model.Dog]{
	Kind:      model.KindDog,
	Table:     "dogs",
	KeyColumn: "name",
	Columns:   []string{"breed", "gender"},
	Key:       (*model.Dog).Key,
	Values: func(d *model.Dog) []any {
		return []any{d.Breed, d.Gender}
	},
	Fields: func(d *model.Dog) []any {
		return []any{&d.Name, &d.Breed, &d.Gender}
	},
}

var RestaurantSchema = persistence.Schema[int64, model.Restaurant]{
	Kind:      model.KindRestaurant,
	Table:     "restaurants",
	KeyColumn: "id",
	Columns:   []string{"name", "description"},
	AutoKey:   true,
	Key:       (*model.Restaurant).Key,
	AssignKey: (*model.Restaurant).AssignKey,
	Values: func(r *model.Restaurant) []any {
		return []any{r.Name, r.Description}
	},
	Fields: func(r *model.Restaurant) []any {
		return []any{&r.ID, &r.Name, &r.Description}
	},
}

const (
	booksDDL = `CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL DEFAULT '',
	author TEXT NOT NULL DEFAULT '',
	year TEXT NOT NULL DEFAULT ''
)`

	dogsDDL = `CREATE TABLE IF NOT EXISTS dogs (
	name TEXT PRIMARY KEY,
	breed TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT ''
)`

	restaurantsDDL = `CREATE TABLE IF NOT EXISTS restaurants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
)`
)

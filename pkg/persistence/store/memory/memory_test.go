package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/ucsb-cs156/crudapi/pkg/persistence"
)

type item struct {
	ID   int64
	Name string
}

type pet struct {
	Name  string
	Breed string
}

var itemSchema = persistence.Schema[int64, item]{
	Kind:      "Item",
	AutoKey:   true,
	Key:       func(i *item) int64 { return i.ID },
	AssignKey: func(i *item, id int64) { i.ID = id },
}

var petSchema = persistence.Schema[string, pet]{
	Kind: "Pet",
	Key:  func(p *pet) string { return p.Name },
}

func TestSaveAssignsKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore(itemSchema)

	first := &item{Name: "first"}
	second := &item{Name: "second"}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected keys 1 and 2, but got: %d and %d", first.ID, second.ID)
	}

	got, ok, err := store.FindByKey(ctx, 2)
	if err != nil || !ok || got.Name != "second" {
		t.Fatalf("expected second item, but got: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	store := NewStore(itemSchema)

	rec := &item{Name: "before"}
	_ = store.Save(ctx, rec)

	rec.Name = "after"
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	all, _ := store.FindAll(ctx)
	if len(all) != 1 || all[0].Name != "after" {
		t.Fatalf("expected a single overwritten record, but got: %+v", all)
	}
}

func TestExplicitKeyAdvancesSequence(t *testing.T) {
	ctx := context.Background()
	store := NewStore(itemSchema)

	_ = store.Save(ctx, &item{ID: 7, Name: "seeded"})
	next := &item{Name: "next"}
	_ = store.Save(ctx, next)

	if next.ID != 8 {
		t.Fatalf("expected key 8 after explicit key 7, but got: %d", next.ID)
	}
}

func TestCallerKeyRequired(t *testing.T) {
	ctx := context.Background()
	store := NewStore(petSchema)

	err := store.Save(ctx, &pet{Breed: "Poodle"})
	if !errors.Is(err, persistence.ErrMissingKey) {
		t.Fatalf("expected %v, but got: %v", persistence.ErrMissingKey, err)
	}

	if err := store.Save(ctx, &pet{Name: "Annie", Breed: "Poodle"}); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	got, ok, _ := store.FindByKey(ctx, "Annie")
	if !ok || got.Breed != "Poodle" {
		t.Fatalf("expected Annie the Poodle, but got: %+v ok=%v", got, ok)
	}
}

func TestDeleteAndMiss(t *testing.T) {
	ctx := context.Background()
	store := NewStore(petSchema)

	annie := pet{Name: "Annie"}
	_ = store.Save(ctx, &annie)
	if err := store.Delete(ctx, annie); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if _, ok, err := store.FindByKey(ctx, "Annie"); ok || err != nil {
		t.Fatalf("expected miss after delete, but got ok=%v err=%v", ok, err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	store := NewStore(itemSchema)
	_ = store.Save(ctx, &item{Name: "a"})
	_ = store.Save(ctx, &item{Name: "b"})

	seq, records := store.Snapshot()
	restored := NewStoreFrom(itemSchema, seq, records)

	all, _ := restored.FindAll(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 restored records, but got: %d", len(all))
	}

	next := &item{Name: "c"}
	_ = restored.Save(ctx, next)
	if next.ID != 3 {
		t.Fatalf("expected sequence to continue at 3, but got: %d", next.ID)
	}
}

package repository_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/internal/repository"
)

type owner struct {
	ID      bson.ObjectID   `bson:"_id,omitempty"`
	ItemIDs []bson.ObjectID `bson:"item_ids"`
}

func TestLinkUnlink(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore[owner]()

	o := &owner{ID: bson.NewObjectID(), ItemIDs: []bson.ObjectID{}}
	if err := store.Insert(ctx, o); err != nil {
		t.Fatal(err)
	}
	item := bson.NewObjectID()

	if err := repository.Link(ctx, store, o.ID, "item_ids", item); err != nil {
		t.Fatalf("first link: %v", err)
	}
	got, err := store.FindByID(ctx, o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.ItemIDs) != 1 || got.ItemIDs[0] != item {
		t.Fatalf("item_ids = %v, want [%s]", got.ItemIDs, item.Hex())
	}

	// Linking the same value again modifies nothing.
	if err := repository.Link(ctx, store, o.ID, "item_ids", item); !errors.Is(err, repository.ErrLinkNotModified) {
		t.Fatalf("repeat link: err=%v, want ErrLinkNotModified", err)
	}

	if err := repository.Unlink(ctx, store, o.ID, "item_ids", item); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	if err := repository.Unlink(ctx, store, o.ID, "item_ids", item); !errors.Is(err, repository.ErrLinkNotModified) {
		t.Fatalf("repeat unlink: err=%v, want ErrLinkNotModified", err)
	}
}

func TestLinkMissingOwner(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStore[owner]()

	err := repository.Link(ctx, store, bson.NewObjectID(), "item_ids", bson.NewObjectID())
	if !errors.Is(err, repository.ErrLinkNotModified) {
		t.Fatalf("link to missing owner: err=%v, want ErrLinkNotModified", err)
	}
	err = repository.Unlink(ctx, store, bson.NewObjectID(), "item_ids", bson.NewObjectID())
	if !errors.Is(err, repository.ErrLinkNotModified) {
		t.Fatalf("unlink from missing owner: err=%v, want ErrLinkNotModified", err)
	}
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Link and Unlink maintain one side of a mirror link: a pair of id-array
// memberships kept redundantly on two related documents. Each call touches
// exactly one side; callers are responsible for invoking both sides.
// A write that modifies nothing is reported as ErrLinkNotModified.

func Link[T any](ctx context.Context, store EntityStore[T], ownerID bson.ObjectID, field string, value bson.ObjectID) error {
	n, err := store.Push(ctx, ownerID, field, value)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLinkNotModified
	}
	return nil
}

func Unlink[T any](ctx context.Context, store EntityStore[T], ownerID bson.ObjectID, field string, value bson.ObjectID) error {
	n, err := store.Pull(ctx, ownerID, field, value)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLinkNotModified
	}
	return nil
}

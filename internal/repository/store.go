package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
	// ErrLinkNotModified is returned when an array push/pull modifies no
	// document. The owner may be missing, or the value may already be
	// present/absent; the store cannot tell the two apart.
	ErrLinkNotModified = errors.New("link not modified")
)

// EntityStore is the per-collection contract every service depends on.
// Update-style operations report how many documents they modified so that
// callers can turn a zero-effect write into an error.
type EntityStore[T any] interface {
	Insert(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id bson.ObjectID) (*T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Replace(ctx context.Context, id bson.ObjectID, doc *T) (int64, error)
	Push(ctx context.Context, id bson.ObjectID, field string, value any) (int64, error)
	Pull(ctx context.Context, id bson.ObjectID, field string, value any) (int64, error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

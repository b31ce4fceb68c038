package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore implements EntityStore against a single collection.
type MongoStore[T any] struct {
	col *mongo.Collection
}

func NewMongoStore[T any](db *mongo.Database, collection string) *MongoStore[T] {
	return &MongoStore[T]{col: db.Collection(collection)}
}

func (s *MongoStore[T]) Insert(ctx context.Context, doc *T) error {
	_, err := s.col.InsertOne(ctx, doc)
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// isDuplicateKey reports whether err is a unique-index violation (code 11000).
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

func (s *MongoStore[T]) FindByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Find returns matching documents in insertion order (_id ascending), so
// paginated listings are deterministic.
func (s *MongoStore[T]) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.col.CountDocuments(ctx, filter)
}

func (s *MongoStore[T]) Replace(ctx context.Context, id bson.ObjectID, doc *T) (int64, error) {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Push adds a value to an array field unless it is already present.
func (s *MongoStore[T]) Push(ctx context.Context, id bson.ObjectID, field string, value any) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: value}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoStore[T]) Pull(ctx context.Context, id bson.ObjectID, field string, value any) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: value}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoStore[T]) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

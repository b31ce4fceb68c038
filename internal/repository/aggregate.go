package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch   = "$match"
	StageLookup  = "$lookup"
	StageUnwind  = "$unwind"
	StageProject = "$project"
	StageSort    = "$sort"
	StageSkip    = "$skip"
	StageLimit   = "$limit"

	KeyFrom         = "from"
	KeyLocalField   = "localField"
	KeyForeignField = "foreignField"
	KeyAs           = "as"
)

// AggregationReader serves the joined, paginated listing endpoints. It reads
// across collections through $lookup and never mutates anything; relationship
// maintenance stays with the services.
type AggregationReader struct {
	db *mongo.Database
}

func NewAggregationReader(db *mongo.Database) *AggregationReader {
	return &AggregationReader{db: db}
}

func (r *AggregationReader) run(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// CommentsWithAuthor returns a post's comments joined with their author's
// public fields, oldest first.
func (r *AggregationReader) CommentsWithAuthor(ctx context.Context, postID bson.ObjectID, skip, limit int64) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"post_id": postID}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "author_id",
			KeyForeignField: "_id",
			KeyAs:           "author",
		}}},
		{{Key: StageUnwind, Value: "$author"}},
		{{Key: StageProject, Value: bson.M{
			"content":         1,
			"author_id":       1,
			"post_id":         1,
			"created_at":      1,
			"updated_at":      1,
			"author.username": 1,
			"author.role":     1,
		}}},
		{{Key: StageSort, Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: StageSkip, Value: skip}},
		{{Key: StageLimit, Value: limit}},
	}
	return r.run(ctx, "comments", pipeline)
}

// PostsWithEstateAndAuthor returns posts joined with their author and, when
// the post advertises an estate, the estate document. Newest first.
func (r *AggregationReader) PostsWithEstateAndAuthor(ctx context.Context, skip, limit int64) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "author_id",
			KeyForeignField: "_id",
			KeyAs:           "author",
		}}},
		{{Key: StageUnwind, Value: "$author"}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "estates",
			KeyLocalField:   "estate_id",
			KeyForeignField: "_id",
			KeyAs:           "estate",
		}}},
		{{Key: StageUnwind, Value: bson.M{
			"path":                       "$estate",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: StageProject, Value: bson.M{
			"title":           1,
			"content":         1,
			"author_id":       1,
			"estate_id":       1,
			"comment_ids":     1,
			"created_at":      1,
			"author.username": 1,
			"estate.title":    1,
			"estate.price":    1,
			"estate.images":   1,
		}}},
		{{Key: StageSort, Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: StageSkip, Value: skip}},
		{{Key: StageLimit, Value: limit}},
	}
	return r.run(ctx, "posts", pipeline)
}

// EstatesWithOwner returns estates joined with the owning user's public fields.
func (r *AggregationReader) EstatesWithOwner(ctx context.Context, skip, limit int64) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "user_id",
			KeyForeignField: "_id",
			KeyAs:           "owner",
		}}},
		{{Key: StageUnwind, Value: "$owner"}},
		{{Key: StageProject, Value: bson.M{
			"title":                 1,
			"description":           1,
			"price":                 1,
			"images":                1,
			"user_id":               1,
			"post_ids":              1,
			"favorited_by_user_ids": 1,
			"created_at":            1,
			"owner.username":        1,
			"owner.email":           1,
		}}},
		{{Key: StageSort, Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: StageSkip, Value: skip}},
		{{Key: StageLimit, Value: limit}},
	}
	return r.run(ctx, "estates", pipeline)
}

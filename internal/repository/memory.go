package repository

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemStore is an in-memory EntityStore used by the test suites in place of
// a running MongoDB. Documents are held as bson maps produced by a real
// bson round-trip, so field names and value types match what MongoStore
// would read back, and Push/Pull report modified counts with the same
// $addToSet/$pull semantics. Insertion order is preserved, which matches
// MongoStore's _id-ascending listing order for freshly generated ObjectIDs.
type MemStore[T any] struct {
	mu   sync.Mutex
	docs []memDoc
}

type memDoc struct {
	id  bson.ObjectID
	raw bson.M
}

func NewMemStore[T any]() *MemStore[T] {
	return &MemStore[T]{}
}

func encodeDoc[T any](doc *T) (bson.ObjectID, bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return bson.NilObjectID, nil, err
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return bson.NilObjectID, nil, err
	}
	id, _ := raw["_id"].(bson.ObjectID)
	return id, raw, nil
}

func decodeDoc[T any](raw bson.M) (*T, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// normalize routes a value through bson so comparisons see the same shape
// a stored document would have.
func normalize(v any) any {
	data, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return v
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return v
	}
	return m["v"]
}

func valueEq(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

func (s *MemStore[T]) indexOf(id bson.ObjectID) int {
	for i := range s.docs {
		if s.docs[i].id == id {
			return i
		}
	}
	return -1
}

func (s *MemStore[T]) matches(raw bson.M, filter bson.M) bool {
	for k, want := range filter {
		if !valueEq(raw[k], want) {
			return false
		}
	}
	return true
}

func (s *MemStore[T]) Insert(_ context.Context, doc *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, raw, err := encodeDoc(doc)
	if err != nil {
		return err
	}
	if s.indexOf(id) >= 0 {
		return ErrDuplicate
	}
	s.docs = append(s.docs, memDoc{id: id, raw: raw})
	return nil
}

func (s *MemStore[T]) FindByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *MemStore[T]) FindOne(_ context.Context, filter bson.M) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.matches(s.docs[i].raw, filter) {
			return decodeDoc[T](s.docs[i].raw)
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore[T]) Find(_ context.Context, filter bson.M, skip, limit int64) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []T
	var seen int64
	for i := range s.docs {
		if !s.matches(s.docs[i].raw, filter) {
			continue
		}
		seen++
		if seen <= skip {
			continue
		}
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		doc, err := decodeDoc[T](s.docs[i].raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (s *MemStore[T]) Count(_ context.Context, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for i := range s.docs {
		if s.matches(s.docs[i].raw, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemStore[T]) Replace(_ context.Context, id bson.ObjectID, doc *T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	_, raw, err := encodeDoc(doc)
	if err != nil {
		return 0, err
	}
	raw["_id"] = id
	s.docs[i].raw = raw
	return 1, nil
}

func (s *MemStore[T]) Push(_ context.Context, id bson.ObjectID, field string, value any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	arr, _ := s.docs[i].raw[field].(bson.A)
	for _, v := range arr {
		if valueEq(v, value) {
			return 0, nil
		}
	}
	s.docs[i].raw[field] = append(arr, normalize(value))
	return 1, nil
}

func (s *MemStore[T]) Pull(_ context.Context, id bson.ObjectID, field string, value any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	arr, _ := s.docs[i].raw[field].(bson.A)
	kept := make(bson.A, 0, len(arr))
	for _, v := range arr {
		if !valueEq(v, value) {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(arr) {
		return 0, nil
	}
	s.docs[i].raw[field] = kept
	return 1, nil
}

func (s *MemStore[T]) Delete(_ context.Context, id bson.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return 1, nil
}

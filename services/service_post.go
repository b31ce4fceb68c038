package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/repository"
	"estatehub/internal/validate"
	"estatehub/model"
)

type PostService struct {
	posts   repository.EntityStore[model.Post]
	users   repository.EntityStore[model.User]
	estates repository.EntityStore[model.Estate]
}

func NewPostService(
	posts repository.EntityStore[model.Post],
	users repository.EntityStore[model.User],
	estates repository.EntityStore[model.Estate],
) *PostService {
	return &PostService{posts: posts, users: users, estates: estates}
}

// Create inserts the post and mirrors its id into the author's post_ids
// and, when the post advertises an estate, into that estate's post_ids.
// The mirror writes run one after the other; an error is returned as-is
// without undoing the steps before it.
func (s *PostService) Create(ctx context.Context, authorID bson.ObjectID, body dto.CreatePostDTO) (*model.Post, error) {
	if err := validate.Required("title", body.Title); err != nil {
		return nil, err
	}
	if err := validate.Required("content", body.Content); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var estateID *bson.ObjectID
	if body.EstateID != "" {
		oid, err := bson.ObjectIDFromHex(body.EstateID)
		if err != nil {
			return nil, validate.Required("estateId", "")
		}
		if _, err := s.estates.FindByID(ctx, oid); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrEstateNotFound
			}
			return nil, err
		}
		estateID = &oid
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:         bson.NewObjectID(),
		Title:      body.Title,
		Content:    body.Content,
		AuthorID:   authorID,
		EstateID:   estateID,
		CreatedAt:  now,
		UpdatedAt:  now,
		CommentIDs: []bson.ObjectID{},
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	if err := repository.Link(ctx, s.users, authorID, "post_ids", post.ID); err != nil {
		return nil, err
	}
	if estateID != nil {
		if err := repository.Link(ctx, s.estates, *estateID, "post_ids", post.ID); err != nil {
			return nil, err
		}
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, requesterID, postID bson.ObjectID, body dto.UpdatePostDTO) (*model.Post, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	if body.Title != nil {
		if err := validate.Required("title", *body.Title); err != nil {
			return nil, err
		}
		post.Title = *body.Title
	}
	if body.Content != nil {
		if err := validate.Required("content", *body.Content); err != nil {
			return nil, err
		}
		post.Content = *body.Content
	}
	post.UpdatedAt = time.Now().UTC()

	n, err := s.posts.Replace(ctx, post.ID, post)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, page, pageSize int64) ([]model.Post, int64, error) {
	return listPage(ctx, s.posts, page, pageSize)
}

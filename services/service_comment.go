package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/internal/repository"
	"estatehub/internal/validate"
	"estatehub/model"
)

type CommentService struct {
	comments repository.EntityStore[model.Comment]
	posts    repository.EntityStore[model.Post]
	users    repository.EntityStore[model.User]
}

func NewCommentService(
	comments repository.EntityStore[model.Comment],
	posts repository.EntityStore[model.Post],
	users repository.EntityStore[model.User],
) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// Create validates the content, inserts the comment and mirrors its id into
// the owning post's and the author's comment_ids. Content is stored exactly
// as submitted; trimming applies to the length check only.
func (s *CommentService) Create(ctx context.Context, authorID, postID bson.ObjectID, content string) (*model.Comment, error) {
	if err := validate.CommentContent(content); err != nil {
		return nil, err
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	comment := &model.Comment{
		ID:        bson.NewObjectID(),
		Content:   content,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}
	if err := repository.Link(ctx, s.posts, postID, "comment_ids", comment.ID); err != nil {
		return nil, err
	}
	if err := repository.Link(ctx, s.users, authorID, "comment_ids", comment.ID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, requesterID, commentID bson.ObjectID, content string) (*model.Comment, error) {
	if err := validate.CommentContent(content); err != nil {
		return nil, err
	}

	comment, err := s.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != requesterID {
		return nil, ErrForbidden
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	n, err := s.comments.Replace(ctx, comment.ID, comment)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// ListByPost returns a post's comments oldest first, with the post's total.
func (s *CommentService) ListByPost(ctx context.Context, postID bson.ObjectID, page, pageSize int64) ([]model.Comment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	filter := bson.M{"post_id": postID}
	items, err := s.comments.Find(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.comments.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

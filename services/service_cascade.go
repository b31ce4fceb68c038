package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/internal/repository"
	"estatehub/model"
)

// CascadeService owns all four stores and performs every cross-entity
// deletion. Teardown order is fixed: mirror links on siblings are removed
// first, then dependent children recursively, and the entity's own document
// always goes last, so a cascade that fails partway has not yet "committed"
// the deletion itself.
//
// Every unlink step is idempotent: a link that is already gone counts as
// done, so a failed cascade can be re-run safely. There is no rollback of
// completed steps; the first hard error is returned as-is.
type CascadeService struct {
	users    repository.EntityStore[model.User]
	estates  repository.EntityStore[model.Estate]
	posts    repository.EntityStore[model.Post]
	comments repository.EntityStore[model.Comment]
	images   ImageStore
}

func NewCascadeService(
	users repository.EntityStore[model.User],
	estates repository.EntityStore[model.Estate],
	posts repository.EntityStore[model.Post],
	comments repository.EntityStore[model.Comment],
	images ImageStore,
) *CascadeService {
	return &CascadeService{
		users:    users,
		estates:  estates,
		posts:    posts,
		comments: comments,
		images:   images,
	}
}

// unlink drops the ErrLinkNotModified ambiguity inside cascades: an owner
// that is gone or a value that is already absent both mean there is nothing
// left to clean up.
func unlink[T any](ctx context.Context, store repository.EntityStore[T], ownerID bson.ObjectID, field string, value bson.ObjectID) error {
	err := repository.Unlink(ctx, store, ownerID, field, value)
	if errors.Is(err, repository.ErrLinkNotModified) {
		return nil
	}
	return err
}

// DeleteComment unlinks the comment from its post and author, then removes
// the comment document.
func (s *CascadeService) DeleteComment(ctx context.Context, id bson.ObjectID) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := unlink(ctx, s.posts, comment.PostID, "comment_ids", id); err != nil {
		return err
	}
	if err := unlink(ctx, s.users, comment.AuthorID, "comment_ids", id); err != nil {
		return err
	}

	if _, err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// DeletePost unlinks the post from its author and (when set) its estate,
// deletes every comment the post holds, then removes the post document.
func (s *CascadeService) DeletePost(ctx context.Context, id bson.ObjectID) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if err := unlink(ctx, s.users, post.AuthorID, "post_ids", id); err != nil {
		return err
	}
	if post.EstateID != nil {
		if err := unlink(ctx, s.estates, *post.EstateID, "post_ids", id); err != nil {
			return err
		}
	}

	for _, cid := range post.CommentIDs {
		if err := s.DeleteComment(ctx, cid); err != nil && !errors.Is(err, ErrCommentNotFound) {
			return err
		}
	}

	if _, err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// DeleteEstate deletes every post advertised on the estate, clears the
// favorite link on every user who favorited it, unlinks the estate from its
// owner, removes the stored images, then removes the estate document.
func (s *CascadeService) DeleteEstate(ctx context.Context, id bson.ObjectID) error {
	estate, err := s.estates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEstateNotFound
		}
		return err
	}

	for _, pid := range estate.PostIDs {
		if err := s.DeletePost(ctx, pid); err != nil && !errors.Is(err, ErrPostNotFound) {
			return err
		}
	}
	for _, uid := range estate.FavoritedByUserIDs {
		if err := unlink(ctx, s.users, uid, "favorite_estate_ids", id); err != nil {
			return err
		}
	}
	if err := unlink(ctx, s.users, estate.UserID, "estate_ids", id); err != nil {
		return err
	}

	for _, img := range estate.Images {
		if err := s.images.Delete(img); err != nil {
			log.Printf("cascade: failed to delete image %s: %v", img, err)
		}
	}

	if _, err := s.estates.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// DeleteUser tears down everything the user owns: their estates (which take
// the posts and comments advertised on them), their favorite links on the
// estate side, their remaining posts, their remaining comments, and finally
// the user document.
func (s *CascadeService) DeleteUser(ctx context.Context, id bson.ObjectID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	for _, eid := range user.EstateIDs {
		if err := s.DeleteEstate(ctx, eid); err != nil && !errors.Is(err, ErrEstateNotFound) {
			return err
		}
	}
	for _, eid := range user.FavoriteEstateIDs {
		if err := unlink(ctx, s.estates, eid, "favorited_by_user_ids", id); err != nil {
			return err
		}
	}
	// Estate cascades above may already have removed some of these.
	for _, pid := range user.PostIDs {
		if err := s.DeletePost(ctx, pid); err != nil && !errors.Is(err, ErrPostNotFound) {
			return err
		}
	}
	for _, cid := range user.CommentIDs {
		if err := s.DeleteComment(ctx, cid); err != nil && !errors.Is(err, ErrCommentNotFound) {
			return err
		}
	}

	if _, err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

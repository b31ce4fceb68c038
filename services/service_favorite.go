package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/internal/repository"
	"estatehub/model"
)

// FavoriteService maintains the User↔Estate favorite mirror: the estate id
// lives in user.favorite_estate_ids and the user id in
// estate.favorited_by_user_ids, and the two sides must agree after every
// successful toggle.
type FavoriteService struct {
	users   repository.EntityStore[model.User]
	estates repository.EntityStore[model.Estate]
}

func NewFavoriteService(
	users repository.EntityStore[model.User],
	estates repository.EntityStore[model.Estate],
) *FavoriteService {
	return &FavoriteService{users: users, estates: estates}
}

func (s *FavoriteService) lookup(ctx context.Context, userID, estateID bson.ObjectID) (*model.User, *model.Estate, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	estate, err := s.estates.FindByID(ctx, estateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrEstateNotFound
		}
		return nil, nil, err
	}
	return user, estate, nil
}

// Add puts the estate into the user's favorites. Owners may not favorite
// their own estate, and favoriting twice is an error, not a no-op. The user
// side is written first (full-document replace), then the estate side via
// the mirror; a failure between the two leaves a one-sided link behind.
func (s *FavoriteService) Add(ctx context.Context, userID, estateID bson.ObjectID) error {
	user, estate, err := s.lookup(ctx, userID, estateID)
	if err != nil {
		return err
	}
	if estate.UserID == userID {
		return ErrOwnEstate
	}
	if user.HasFavorite(estateID) {
		return ErrAlreadyFavorite
	}

	user.FavoriteEstateIDs = append(user.FavoriteEstateIDs, estateID)
	n, err := s.users.Replace(ctx, user.ID, user)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return repository.Link(ctx, s.estates, estateID, "favorited_by_user_ids", userID)
}

// Remove is the symmetric teardown of Add. Removing an estate that is not
// in the favorites is an error.
func (s *FavoriteService) Remove(ctx context.Context, userID, estateID bson.ObjectID) error {
	user, _, err := s.lookup(ctx, userID, estateID)
	if err != nil {
		return err
	}
	if !user.HasFavorite(estateID) {
		return ErrNotFavorite
	}

	kept := user.FavoriteEstateIDs[:0]
	for _, id := range user.FavoriteEstateIDs {
		if id != estateID {
			kept = append(kept, id)
		}
	}
	user.FavoriteEstateIDs = kept

	n, err := s.users.Replace(ctx, user.ID, user)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return repository.Unlink(ctx, s.estates, estateID, "favorited_by_user_ids", userID)
}

// CanFavorite reports whether Add would be allowed. A deleted estate is a
// not-found error, never a silent false.
func (s *FavoriteService) CanFavorite(ctx context.Context, userID, estateID bson.ObjectID) (bool, error) {
	user, estate, err := s.lookup(ctx, userID, estateID)
	if err != nil {
		return false, err
	}
	if estate.UserID == userID {
		return false, nil
	}
	return !user.HasFavorite(estateID), nil
}

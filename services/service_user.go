package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"estatehub/dto"
	"estatehub/internal/repository"
	"estatehub/internal/validate"
	"estatehub/model"
)

type UserService struct {
	users repository.EntityStore[model.User]
}

func NewUserService(users repository.EntityStore[model.User]) *UserService {
	return &UserService{users: users}
}

// Register validates the input, hashes the password and inserts the user.
// Uniqueness of username and email is enforced by the indexes created at
// startup; a duplicate insert surfaces as ErrUserExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validate.Username(username); err != nil {
		return nil, err
	}
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Password(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:                bson.NewObjectID(),
		Username:          username,
		Email:             email,
		PasswordHash:      string(hash),
		Role:              model.RoleUser,
		CreatedAt:         time.Now().UTC(),
		PostIDs:           []bson.ObjectID{},
		CommentIDs:        []bson.ObjectID{},
		EstateIDs:         []bson.ObjectID{},
		FavoriteEstateIDs: []bson.ObjectID{},
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindOne(ctx, bson.M{"username": strings.TrimSpace(username)})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrForbidden
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update changes username and/or email on an existing account. Uniqueness
// is enforced by the same indexes Register relies on.
func (s *UserService) Update(ctx context.Context, id bson.ObjectID, body dto.UpdateUserDTO) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if body.Username != nil {
		username := strings.TrimSpace(*body.Username)
		if err := validate.Username(username); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if body.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*body.Email))
		if err := validate.Email(email); err != nil {
			return nil, err
		}
		user.Email = email
	}

	if _, err := s.users.Replace(ctx, id, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, page, pageSize int64) ([]model.User, int64, error) {
	return listPage(ctx, s.users, page, pageSize)
}

// listPage is shared by every paginated listing: page is 1-based, result
// order follows insertion order, and the total count always reflects the
// whole collection so callers can report totalLength past the last page.
func listPage[T any](ctx context.Context, store repository.EntityStore[T], page, pageSize int64) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	items, err := store.Find(ctx, bson.M{}, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := store.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/repository"
	"estatehub/internal/validate"
	"estatehub/model"
)

// ImageStore is the asset-store collaborator used during estate create,
// update and delete. Save returns the stored path.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Delete(path string) error
}

type EstateService struct {
	estates repository.EntityStore[model.Estate]
	users   repository.EntityStore[model.User]
	images  ImageStore
}

func NewEstateService(
	estates repository.EntityStore[model.Estate],
	users repository.EntityStore[model.User],
	images ImageStore,
) *EstateService {
	return &EstateService{estates: estates, users: users, images: images}
}

// Create validates, stores the uploaded images, inserts the estate and
// mirrors the estate id into the owner's estate_ids. A failure after the
// insert leaves the steps that already ran in place (no rollback).
func (s *EstateService) Create(ctx context.Context, ownerID bson.ObjectID, body dto.CreateEstateDTO, files []*multipart.FileHeader) (*model.Estate, error) {
	if err := validate.Required("title", body.Title); err != nil {
		return nil, err
	}
	if err := validate.Price(body.Price); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, validate.Required("images", "")
	}

	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, err := s.images.Save(f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	now := time.Now().UTC()
	estate := &model.Estate{
		ID:                 bson.NewObjectID(),
		Title:              body.Title,
		Description:        body.Description,
		Price:              body.Price,
		Images:             paths,
		UserID:             ownerID,
		CreatedAt:          now,
		UpdatedAt:          now,
		PostIDs:            []bson.ObjectID{},
		FavoritedByUserIDs: []bson.ObjectID{},
	}

	if err := s.estates.Insert(ctx, estate); err != nil {
		return nil, err
	}
	if err := repository.Link(ctx, s.users, ownerID, "estate_ids", estate.ID); err != nil {
		return nil, err
	}
	return estate, nil
}

// Update replaces the changed fields; only the owner may update. New images
// replace the old ones, which are removed from the asset store.
func (s *EstateService) Update(ctx context.Context, requesterID, estateID bson.ObjectID, body dto.UpdateEstateDTO, files []*multipart.FileHeader) (*model.Estate, error) {
	estate, err := s.GetByID(ctx, estateID)
	if err != nil {
		return nil, err
	}
	if estate.UserID != requesterID {
		return nil, ErrForbidden
	}

	if body.Title != nil {
		if err := validate.Required("title", *body.Title); err != nil {
			return nil, err
		}
		estate.Title = *body.Title
	}
	if body.Description != nil {
		estate.Description = *body.Description
	}
	if body.Price != nil {
		if err := validate.Price(*body.Price); err != nil {
			return nil, err
		}
		estate.Price = *body.Price
	}

	if len(files) > 0 {
		paths := make([]string, 0, len(files))
		for _, f := range files {
			p, err := s.images.Save(f)
			if err != nil {
				return nil, err
			}
			paths = append(paths, p)
		}
		old := estate.Images
		estate.Images = paths
		for _, p := range old {
			if err := s.images.Delete(p); err != nil {
				return nil, err
			}
		}
	}

	estate.UpdatedAt = time.Now().UTC()
	n, err := s.estates.Replace(ctx, estate.ID, estate)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrEstateNotFound
	}
	return estate, nil
}

func (s *EstateService) GetByID(ctx context.Context, id bson.ObjectID) (*model.Estate, error) {
	estate, err := s.estates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEstateNotFound
		}
		return nil, err
	}
	return estate, nil
}

func (s *EstateService) List(ctx context.Context, page, pageSize int64) ([]model.Estate, int64, error) {
	return listPage(ctx, s.estates, page, pageSize)
}

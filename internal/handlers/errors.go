package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estatehub/dto"
	"estatehub/internal/repository"
	"estatehub/internal/validate"
	"estatehub/services"
)

// respondErr maps service errors onto HTTP statuses. Every handler funnels
// its service errors through here so the mapping lives in one place.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, validate.ErrInvalid),
		errors.Is(err, repository.ErrLinkNotModified),
		errors.Is(err, services.ErrAlreadyFavorite),
		errors.Is(err, services.ErrNotFavorite),
		errors.Is(err, services.ErrOwnEstate):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrEstateNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrUserExists):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: err.Error()})
}

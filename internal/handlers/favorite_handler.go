package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/middleware"
	"estatehub/services"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

func (h *FavoriteHandler) ids(c *fiber.Ctx) (userID, estateID bson.ObjectID, err error) {
	userID, err = middleware.UIDFromLocals(c)
	if err != nil {
		return
	}
	estateID, err = bson.ObjectIDFromHex(c.Params("estateId"))
	if err != nil {
		err = fiber.NewError(fiber.StatusBadRequest, "invalid estate id")
	}
	return
}

// POST /estates/:estateId/favorite
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	uid, eid, err := h.ids(c)
	if err != nil {
		return err
	}
	if err := h.Favorites.Add(c.Context(), uid, eid); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FavoriteResp{EstateID: eid.Hex(), IsFavorite: true})
}

// DELETE /estates/:estateId/favorite
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	uid, eid, err := h.ids(c)
	if err != nil {
		return err
	}
	if err := h.Favorites.Remove(c.Context(), uid, eid); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.FavoriteResp{EstateID: eid.Hex(), IsFavorite: false})
}

// GET /estates/:estateId/can-favorite
func (h *FavoriteHandler) CanFavorite(c *fiber.Ctx) error {
	uid, eid, err := h.ids(c)
	if err != nil {
		return err
	}
	ok, err := h.Favorites.CanFavorite(c.Context(), uid, eid)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.CanFavoriteResp{CanFavorite: ok})
}

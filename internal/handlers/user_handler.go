package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/middleware"
	"estatehub/model"
	"estatehub/services"
)

type UserHandler struct {
	Users   *services.UserService
	Cascade *services.CascadeService
}

func NewUserHandler(users *services.UserService, cascade *services.CascadeService) *UserHandler {
	return &UserHandler{Users: users, Cascade: cascade}
}

func hexIDs(ids []bson.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func userResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                u.ID.Hex(),
		Username:          u.Username,
		Email:             u.Email,
		Role:              u.Role,
		PostIDs:           hexIDs(u.PostIDs),
		CommentIDs:        hexIDs(u.CommentIDs),
		EstateIDs:         hexIDs(u.EstateIDs),
		FavoriteEstateIDs: hexIDs(u.FavoriteEstateIDs),
	}
}

// Get godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "User ID (hex)"
// @Success      200 {object}  dto.UserResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid user id"})
	}
	user, err := h.Users.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(userResponse(user))
}

// List godoc
// @Summary      List users (paginated)
// @Tags         users
// @Produce      json
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  dto.PagedEstatesResp[dto.UserResponse]
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 10))

	users, total, err := h.Users.List(c.Context(), page, pageSize)
	if err != nil {
		return respondErr(c, err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(dto.PagedEstatesResp[dto.UserResponse]{Items: items, TotalLength: total})
}

// Update godoc
// @Summary      Update a user's profile (self or admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID (hex)"
// @Param        data  body      dto.UpdateUserDTO  true  "Fields to update"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid user id"})
	}

	if id != uid {
		requester, err := h.Users.GetByID(c.Context(), uid)
		if err != nil {
			return respondErr(c, err)
		}
		if requester.Role != model.RoleAdmin {
			return respondErr(c, services.ErrForbidden)
		}
	}

	var body dto.UpdateUserDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	user, err := h.Users.Update(c.Context(), id, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(userResponse(user))
}

// Delete godoc
// @Summary      Delete a user and everything they own
// @Description  Cascades over the user's estates, posts, comments and favorite links.
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID (hex)"
// @Success      204
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid user id"})
	}

	// Only the user themselves or an admin may delete an account.
	if id != uid {
		requester, err := h.Users.GetByID(c.Context(), uid)
		if err != nil {
			return respondErr(c, err)
		}
		if requester.Role != model.RoleAdmin {
			return respondErr(c, services.ErrForbidden)
		}
	}

	if err := h.Cascade.DeleteUser(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

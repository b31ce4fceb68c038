package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/middleware"
	"estatehub/model"
	"estatehub/internal/repository"
	"estatehub/services"
)

type PostHandler struct {
	Posts   *services.PostService
	Cascade *services.CascadeService
	Reader  *repository.AggregationReader
}

func NewPostHandler(posts *services.PostService, cascade *services.CascadeService, reader *repository.AggregationReader) *PostHandler {
	return &PostHandler{Posts: posts, Cascade: cascade, Reader: reader}
}

// Create godoc
// @Summary      Create a discussion post
// @Description  Optionally references an estate via estateId.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CreatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	post, err := h.Posts.Create(c.Context(), uid, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Get godoc
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id  path      string  true  "Post ID (hex)"
// @Success      200 {object}  model.Post
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}
	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// List godoc
// @Summary      List posts (paged)
// @Tags         posts
// @Produce      json
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  dto.PagedPostsResp[model.Post]
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 10))

	items, total, err := h.Posts.List(c.Context(), page, pageSize)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.PagedPostsResp[model.Post]{Items: items, TotalLength: total})
}

// ListWithDetails godoc
// @Summary      List posts joined with author and estate
// @Tags         posts
// @Produce      json
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {array}  object
// @Router       /posts/with-details [get]
func (h *PostHandler) ListWithDetails(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 10))
	if page < 1 {
		page = 1
	}

	items, err := h.Reader.PostsWithEstateAndAuthor(c.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Update a post (author only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID (hex)"
// @Param        data  body      dto.UpdatePostDTO  true  "Fields to update"
// @Success      200   {object}  model.Post
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	var body dto.UpdatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	post, err := h.Posts.Update(c.Context(), uid, id, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// Delete godoc
// @Summary      Delete a post and its comments (author only)
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex)"
// @Success      204
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	post, err := h.Posts.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	if post.AuthorID != uid {
		return respondErr(c, services.ErrForbidden)
	}

	if err := h.Cascade.DeletePost(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

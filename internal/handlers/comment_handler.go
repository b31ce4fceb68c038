package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/middleware"
	"estatehub/internal/repository"
	"estatehub/model"
	"estatehub/services"
)

type CommentHandler struct {
	Comments *services.CommentService
	Cascade  *services.CascadeService
	Reader   *repository.AggregationReader
}

func NewCommentHandler(comments *services.CommentService, cascade *services.CascadeService, reader *repository.AggregationReader) *CommentHandler {
	return &CommentHandler{Comments: comments, Cascade: cascade, Reader: reader}
}

// POST /posts/:postId/comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "content required"})
	}

	comment, err := h.Comments.Create(c.Context(), uid, postID, body.Content)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GET /posts/:postId/comments?page=1&pageSize=20
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 20))

	items, total, err := h.Comments.ListByPost(c.Context(), postID, page, pageSize)
	if err != nil {
		return respondErr(c, err)
	}
	if items == nil {
		items = []model.Comment{}
	}
	return c.JSON(dto.ListCommentsResp[model.Comment]{Comments: items, TotalCount: total})
}

// GET /posts/:postId/comments/with-author?page=1&pageSize=20
func (h *CommentHandler) ListWithAuthor(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid post id"})
	}

	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 20))
	if page < 1 {
		page = 1
	}

	items, err := h.Reader.CommentsWithAuthor(c.Context(), postID, (page-1)*pageSize, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(items)
}

// PUT /comments/:commentId
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid comment id"})
	}

	var body dto.UpdateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "content required"})
	}

	comment, err := h.Comments.Update(c.Context(), uid, cid, body.Content)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comment)
}

// DELETE /comments/:commentId
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid comment id"})
	}

	comment, err := h.Comments.GetByID(c.Context(), cid)
	if err != nil {
		return respondErr(c, err)
	}
	if comment.AuthorID != uid {
		return respondErr(c, services.ErrForbidden)
	}

	if err := h.Cascade.DeleteComment(c.Context(), cid); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

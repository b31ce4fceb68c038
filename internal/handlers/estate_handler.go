package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/middleware"
	"estatehub/internal/repository"
	"estatehub/model"
	"estatehub/services"
)

type EstateHandler struct {
	Estates *services.EstateService
	Cascade *services.CascadeService
	Reader  *repository.AggregationReader
}

func NewEstateHandler(estates *services.EstateService, cascade *services.CascadeService, reader *repository.AggregationReader) *EstateHandler {
	return &EstateHandler{Estates: estates, Cascade: cascade, Reader: reader}
}

// Create godoc
// @Summary      Create an estate listing
// @Description  Multipart form: title, description, price, plus at least one image file.
// @Tags         estates
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  model.Estate
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estates [post]
func (h *EstateHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	body := dto.CreateEstateDTO{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "multipart form required"})
	}
	files := form.File["images"]

	estate, err := h.Estates.Create(c.Context(), uid, body, files)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(estate)
}

// Get godoc
// @Summary      Get an estate by id
// @Tags         estates
// @Produce      json
// @Param        id  path      string  true  "Estate ID (hex)"
// @Success      200 {object}  model.Estate
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /estates/{id} [get]
func (h *EstateHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid estate id"})
	}
	estate, err := h.Estates.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(estate)
}

// List godoc
// @Summary      List estates (paginated)
// @Tags         estates
// @Produce      json
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  dto.PagedEstatesResp[model.Estate]
// @Router       /estates [get]
func (h *EstateHandler) List(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 10))

	estates, total, err := h.Estates.List(c.Context(), page, pageSize)
	if err != nil {
		return respondErr(c, err)
	}
	if estates == nil {
		estates = []model.Estate{}
	}
	return c.JSON(dto.PagedEstatesResp[model.Estate]{Items: estates, TotalLength: total})
}

// ListWithOwner godoc
// @Summary      List estates joined with their owner
// @Tags         estates
// @Produce      json
// @Param        page      query  int  false  "Page number (1-based)"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {array}  object
// @Router       /estates/with-owner [get]
func (h *EstateHandler) ListWithOwner(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	pageSize := int64(c.QueryInt("pageSize", 10))
	if page < 1 {
		page = 1
	}

	items, err := h.Reader.EstatesWithOwner(c.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Update an estate (owner only)
// @Tags         estates
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Estate ID (hex)"
// @Success      200  {object}  model.Estate
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estates/{id} [put]
func (h *EstateHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid estate id"})
	}

	var body dto.UpdateEstateDTO
	if v := c.FormValue("title"); v != "" {
		body.Title = &v
	}
	if v := c.FormValue("description"); v != "" {
		body.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid price"})
		}
		body.Price = &price
	}

	var files []*multipart.FileHeader
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		files = form.File["images"]
	}
	estate, err := h.Estates.Update(c.Context(), uid, id, body, files)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(estate)
}

// Delete godoc
// @Summary      Delete an estate and its dependents (owner only)
// @Description  Cascades over the estate's posts (and their comments), favorite links and images.
// @Tags         estates
// @Security     BearerAuth
// @Param        id  path  string  true  "Estate ID (hex)"
// @Success      204
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /estates/{id} [delete]
func (h *EstateHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid estate id"})
	}

	estate, err := h.Estates.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	if estate.UserID != uid {
		return respondErr(c, services.ErrForbidden)
	}

	if err := h.Cascade.DeleteEstate(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

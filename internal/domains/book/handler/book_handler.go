package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/domains/book/model"
	"virtualbiblio-backend/internal/domains/book/service"
	"virtualbiblio-backend/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	var filter model.BookFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter.Normalize()

	books, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Paginated(c, http.StatusOK, books, total, filter.Page, filter.PageSize)
}

// GetByID - GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b)
}

// GetBySKU - GET /api/books/sku/:sku
func (h *BookHandler) GetBySKU(c *gin.Context) {
	b, err := h.service.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Create - POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	var req model.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkCreate - POST /api/books/bulk
func (h *BookHandler) BulkCreate(c *gin.Context) {
	var req model.BulkCreateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if len(req.Books) == 0 {
		response.BadRequest(c, "La lista de libros está vacía")
		return
	}

	resp, err := h.service.BulkCreate(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Categories - GET /api/books/categories
func (h *BookHandler) Categories(c *gin.Context) {
	h.distinct(c, h.service.Categories)
}

// Formats - GET /api/books/formats
func (h *BookHandler) Formats(c *gin.Context) {
	h.distinct(c, h.service.Formats)
}

// Languages - GET /api/books/languages
func (h *BookHandler) Languages(c *gin.Context) {
	h.distinct(c, h.service.Languages)
}

func (h *BookHandler) distinct(c *gin.Context, fetch func(ctx context.Context) ([]string, error)) {
	values, err := fetch(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if values == nil {
		values = []string{}
	}
	response.Success(c, http.StatusOK, values)
}

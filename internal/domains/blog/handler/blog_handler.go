package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/domains/blog/model"
	"virtualbiblio-backend/internal/domains/blog/service"
	"virtualbiblio-backend/internal/shared/response"
)

type BlogHandler struct {
	service service.Service
}

func NewBlogHandler(svc service.Service) *BlogHandler {
	return &BlogHandler{service: svc}
}

// List - GET /api/blog
func (h *BlogHandler) List(c *gin.Context) {
	var filter model.BlogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter.Normalize()

	blogs, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Paginated(c, http.StatusOK, blogs, total, filter.Page, filter.PageSize)
}

// GetByID - GET /api/blog/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
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

// Create - POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
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

// Update - PUT /api/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	var req model.UpdateBlogRequest
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

// Delete - DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
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

// Categories - GET /api/blog/categories
func (h *BlogHandler) Categories(c *gin.Context) {
	values, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if values == nil {
		values = []string{}
	}
	response.Success(c, http.StatusOK, values)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/domains/donation/model"
	"virtualbiblio-backend/internal/domains/donation/service"
	"virtualbiblio-backend/internal/shared/response"
)

type DonationHandler struct {
	service service.Service
}

func NewDonationHandler(svc service.Service) *DonationHandler {
	return &DonationHandler{service: svc}
}

// List - GET /api/donation
func (h *DonationHandler) List(c *gin.Context) {
	var filter model.DonationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter.Normalize()

	donations, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Paginated(c, http.StatusOK, donations, total, filter.Page, filter.PageSize)
}

// GetByID - GET /api/donation/:id
func (h *DonationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, d)
}

// Create - POST /api/donation
func (h *DonationHandler) Create(c *gin.Context) {
	var req model.CreateDonationRequest
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

// UpdateStatus - PUT /api/donation/:id/status
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Stats - GET /api/donation/stats
func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

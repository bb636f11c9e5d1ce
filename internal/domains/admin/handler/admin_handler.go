package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/domains/admin/service"
	"virtualbiblio-backend/internal/shared/response"
)

type AdminHandler struct {
	service service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Dashboard - GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/domains/user/model"
	"virtualbiblio-backend/internal/domains/user/service"
	"virtualbiblio-backend/internal/shared/middleware"
	"virtualbiblio-backend/internal/shared/response"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login - POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me - GET /api/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "No autenticado")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateProfile - PUT /api/auth/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "No autenticado")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateAvatar - PUT /api/auth/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "No autenticado")
		return
	}

	var req model.UpdateAvatarRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.UpdateAvatar(c.Request.Context(), id, req.AvatarURL)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateUserRole - PUT /api/auth/role. Admin-gated; the target user arrives
// in the body, so an admin can change any account's role.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req model.UpdateUserRoleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), req.UserID, req.Role)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// ChangePassword - PUT /api/auth/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "No autenticado")
		return
	}

	var req model.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, &req); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

// DeleteAccount - DELETE /api/auth/account
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "No autenticado")
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// List - GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	var filter model.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter.Normalize()

	users, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Paginated(c, http.StatusOK, users, total, filter.Page, filter.PageSize)
}

// UpdateRole - PUT /api/admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return
	}

	var req model.UpdateRoleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

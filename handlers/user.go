package handlers

import (
	"net/http"

	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, login and account-update endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterHandler answers POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler answers POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler answers GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u.ToDTO())
}

// UpdateLocationHandler answers PUT /api/users/location.
func (h *UserHandler) UpdateLocationHandler(c *gin.Context) {
	var req struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateLocation(c.Request.Context(), middleware.ActorID(c), req.Lng, req.Lat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "location updated"})
}

// UpdatePushTokenHandler answers PUT /api/users/push-token.
func (h *UserHandler) UpdatePushTokenHandler(c *gin.Context) {
	var req struct {
		PushToken string `json:"pushToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdatePushToken(c.Request.Context(), middleware.ActorID(c), req.PushToken); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "push token updated"})
}

// UpdateWorkingHoursHandler answers PUT /api/users/working-hours.
func (h *UserHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	var req models.WorkingHours
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateWorkingHours(c.Request.Context(), middleware.ActorID(c), req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working hours updated"})
}

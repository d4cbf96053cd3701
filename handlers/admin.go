package handlers

import (
	"net/http"

	serviceRepo "homeserve/database/repository/service"
	"homeserve/models"
	"homeserve/services/booking"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler exposes the administrator surface: provider verification,
// manual assignment of pending bookings, and service catalog management.
type AdminHandler struct {
	Users    user.UserService
	Bookings booking.BookingService
	Services serviceRepo.ServiceRepository
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(users user.UserService, bookings booking.BookingService, services serviceRepo.ServiceRepository) *AdminHandler {
	return &AdminHandler{Users: users, Bookings: bookings, Services: services}
}

// VerifyProviderHandler answers POST /api/admin/providers/:id/verify.
func (h *AdminHandler) VerifyProviderHandler(c *gin.Context) {
	u, err := h.Users.VerifyProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, u.ToDTO())
}

// ManualAssignHandler answers POST /api/admin/bookings/:id/assign.
func (h *AdminHandler) ManualAssignHandler(c *gin.Context) {
	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Bookings.ManualAssign(c.Request.Context(), c.Param("id"), req.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateServiceHandler answers POST /api/admin/services.
func (h *AdminHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.Name == "" || len(svc.PricingWindows) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and pricingWindows are required")
		return
	}

	if err := h.Services.Create(c.Request.Context(), &svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler answers PUT /api/admin/services/:id.
func (h *AdminHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")

	if err := h.Services.Update(c.Request.Context(), &svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler answers DELETE /api/admin/services/:id.
func (h *AdminHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

package handlers

import (
	"net/http"

	serviceRepo "homeserve/database/repository/service"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the public service catalog.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

// NewServiceHandler creates a new ServiceHandler instance.
func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListServicesHandler answers GET /api/services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler answers GET /api/services/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	if svc == nil {
		utils.JSONError(c, http.StatusNotFound, "not found", "service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

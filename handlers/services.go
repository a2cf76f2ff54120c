package handlers

import (
	"net/http"

	serviceRepo "pawbooker/database/repository/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves read access to the service catalog.
type CatalogHandler struct {
	Repo   serviceRepo.ServiceRepository
	Logger *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(repo serviceRepo.ServiceRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	service, err := h.Repo.GetByID(id)
	if err != nil {
		h.Logger.Error("GetServiceByID: failed to fetch service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	if service == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

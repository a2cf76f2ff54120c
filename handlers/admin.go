package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawbooker/models"
	"pawbooker/services/admin"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminHandler serves the business-admin schedule surface: blackouts, weekly
// rules and catalog writes.
type AdminHandler struct {
	Svc    admin.AdminService
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc admin.AdminService, cache *redis.Client, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Cache: cache, Logger: logger}
}

// CreateBlackout handles POST /api/admin/blackouts.
func (h *AdminHandler) CreateBlackout(c *gin.Context) {
	var body struct {
		StartDateTime time.Time `json:"startDateTime" binding:"required"`
		EndDateTime   time.Time `json:"endDateTime" binding:"required"`
		Reason        string    `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	blackout, err := h.Svc.CreateBlackout(body.StartDateTime, body.EndDateTime, body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrBlackoutOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, admin.ErrInvalidSpan):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("CreateBlackout: failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create blackout"})
		}
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusCreated, blackout)
}

// DeleteBlackout handles DELETE /api/admin/blackouts/:id.
func (h *AdminHandler) DeleteBlackout(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteBlackout(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "blackout not found"})
			return
		}
		h.Logger.Error("DeleteBlackout: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete blackout"})
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ListBlackouts handles GET /api/admin/blackouts.
func (h *AdminHandler) ListBlackouts(c *gin.Context) {
	blackouts, err := h.Svc.ListBlackouts()
	if err != nil {
		h.Logger.Error("ListBlackouts: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blackouts"})
		return
	}
	c.JSON(http.StatusOK, blackouts)
}

// UpsertRule handles PUT /api/admin/rules/:dayOfWeek.
func (h *AdminHandler) UpsertRule(c *gin.Context) {
	dayOfWeek, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayOfWeek must be an integer 0-6"})
		return
	}

	var rule models.AvailabilityRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule.DayOfWeek = dayOfWeek

	if err := h.Svc.UpsertRule(&rule); err != nil {
		if errors.Is(err, admin.ErrInvalidSpan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("UpsertRule: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rule"})
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusOK, rule)
}

// ListRules handles GET /api/admin/rules.
func (h *AdminHandler) ListRules(c *gin.Context) {
	rules, err := h.Svc.ListRules()
	if err != nil {
		h.Logger.Error("ListRules: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rules"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateService handles POST /api/admin/services.
func (h *AdminHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.CreateService(&service); err != nil {
		if errors.Is(err, admin.ErrInvalidSpan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("CreateService: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pawbooker/models"
	"pawbooker/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityHandler serves open-interval and first-slot queries.
type AvailabilityHandler struct {
	Engine availability.Engine
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(engine availability.Engine, cache *redis.Client, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Cache: cache, Logger: logger}
}

type openIntervalsResponse struct {
	ServiceID string                `json:"serviceId"`
	Intervals []models.TimeInterval `json:"intervals"`
}

// GetOpenIntervals handles GET /api/availability?serviceId&from&to.
// Instants are RFC3339 in and out; callers render in local time.
func (h *AvailabilityHandler) GetOpenIntervals(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC3339 timestamp", "details": err.Error()})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC3339 timestamp", "details": err.Error()})
		return
	}

	ctx := context.Background()
	cacheKey := availabilityCacheKey(ctx, h.Cache, serviceID, from, to)
	if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	intervals, err := h.Engine.OpenIntervals(serviceID, from, to)
	if err != nil {
		status := statusForEngineError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("GetOpenIntervals: engine failure", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if intervals == nil {
		intervals = []models.TimeInterval{}
	}

	resp := openIntervalsResponse{ServiceID: serviceID, Intervals: intervals}
	if payload, err := json.Marshal(resp); err == nil {
		h.Cache.Set(ctx, cacheKey, payload, availabilityCacheTTL())
	}
	c.JSON(http.StatusOK, resp)
}

// GetFirstOpenSlot handles GET /api/availability/first-slot?serviceId&durationMins&from.
// A null start means no slot fits within the search horizon.
func (h *AvailabilityHandler) GetFirstOpenSlot(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}
	durationMins, err := strconv.Atoi(c.Query("durationMins"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "durationMins must be an integer", "details": err.Error()})
		return
	}

	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC3339 timestamp", "details": err.Error()})
			return
		}
	}

	start, err := h.Engine.FirstOpenSlot(serviceID, durationMins, from)
	if err != nil {
		status := statusForEngineError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("GetFirstOpenSlot: engine failure", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceId": serviceID, "start": start})
}

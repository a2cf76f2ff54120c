package handlers

import (
	"context"
	"net/http"

	"pawbooker/models"
	"pawbooker/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler serves slot holds and booking lifecycle transitions.
type BookingHandler struct {
	Engine availability.Engine
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine availability.Engine, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Cache: cache, Logger: logger}
}

// HoldSlot handles POST /api/bookings/hold.
func (h *BookingHandler) HoldSlot(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	holdID, err := h.Engine.HoldSlot(draft)
	if err != nil {
		status := statusForEngineError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("HoldSlot: engine failure", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusCreated, gin.H{"holdId": holdID})
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Engine.ConfirmHeldBooking(bookingID); err != nil {
		status := statusForEngineError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("ConfirmBooking: engine failure", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "status": models.BookingConfirmed})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Engine.CancelBooking(bookingID); err != nil {
		status := statusForEngineError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("CancelBooking: engine failure", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	invalidateAvailability(context.Background(), h.Cache)
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "status": models.BookingCanceled})
}

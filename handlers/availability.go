package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendo/services/availability"
	"agendo/utils"
)

// AvailabilityHandler exposes slot generation over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Timeout time.Duration
}

// NewAvailabilityHandler constructs an AvailabilityHandler with the request
// timeout applied to every slot computation.
func NewAvailabilityHandler(svc availability.AvailabilityService, timeout time.Duration) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Timeout: timeout}
}

// GetProviderSlotsHandler returns the bookable slots for a provider on a
// date. Query params: date (required, YYYY-MM-DD), duration (required,
// minutes), timeOfDay (optional: morning|afternoon|evening).
func (h *AvailabilityHandler) GetProviderSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("id")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	slots, err := h.Service.GenerateSlots(ctx, providerID, date, duration)
	if err != nil {
		switch err {
		case availability.ErrInvalidDate, availability.ErrInvalidDuration:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("slot generation failed",
				zap.String("providerId", providerID),
				zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		}
		return
	}

	if tod := c.Query("timeOfDay"); tod != "" {
		slots = availability.FilterByTimeOfDay(slots, tod)
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "date": date, "slots": slots})
}

// GetBestDaysHandler scans upcoming days for the provider and returns the
// ones with the most availability. Query params: serviceId (optional), days
// (optional, default 30).
func (h *AvailabilityHandler) GetBestDaysHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("id")
	serviceID := c.Query("serviceId")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive number"})
			return
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	best, err := h.Service.FindBestAvailabilityDays(ctx, providerID, serviceID, days)
	if err != nil {
		logger.Error("best-days scan failed", zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "days": best})
}

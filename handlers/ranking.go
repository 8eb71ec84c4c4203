package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendo/models"
	"agendo/services/ranking"
	"agendo/utils"
)

// RankingHandler exposes provider ranking and discovery over HTTP.
type RankingHandler struct {
	Service ranking.RankingService
}

// NewRankingHandler constructs a RankingHandler.
func NewRankingHandler(svc ranking.RankingService) *RankingHandler {
	return &RankingHandler{Service: svc}
}

// RankProvidersHandler scores and orders providers for a booking request.
func (h *RankingHandler) RankProvidersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var opts models.RankOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if opts.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	ranked, err := h.Service.RankProviders(c.Request.Context(), opts)
	if err != nil {
		logger.Error("ranking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": ranked})
}

// GetRecommendedProvidersHandler returns the recommended providers for a
// service. Query params: date (required), clientId (optional).
func (h *RankingHandler) GetRecommendedProvidersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	serviceID := c.Param("id")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	recommended, err := h.Service.GetRecommendedProvidersForService(c.Request.Context(), serviceID, date, c.Query("clientId"))
	if err != nil {
		logger.Error("recommendation failed", zap.String("serviceId", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceId": serviceID, "providers": recommended})
}

// GetAlternativeProvidersHandler suggests providers that can serve a request
// when the preferred provider may be full. Query params: serviceId, date
// (required).
func (h *RankingHandler) GetAlternativeProvidersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("id")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	alternatives, err := h.Service.FindAlternativeProviders(c.Request.Context(), providerID, c.Query("serviceId"), date)
	if err != nil {
		logger.Error("alternatives lookup failed", zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find alternatives"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": alternatives})
}

package handlers

import (
	"net/http"

	"github.com/arnavshah/flight-assigner-go/pkg/database"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usageHistory(keyID any) ([]database.APIUsage, error) {
	var usage []database.APIUsage
	err := h.DB.Where("key_id = ?", keyID).Order("date desc").Limit(30).Find(&usage).Error
	return usage, err
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	usage, err := h.usageHistory(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}

// GetMyUsage returns usage stats for the authenticated API key
func (h *Handler) GetMyUsage(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	usage, err := h.usageHistory(apiKey.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	var totalRequests, totalFlights, totalPeople, totalPlaced int64
	for _, u := range usage {
		totalRequests += int64(u.RequestCount)
		totalFlights += int64(u.TotalFlights)
		totalPeople += int64(u.TotalPeople)
		totalPlaced += int64(u.TotalPlaced)
	}

	c.JSON(http.StatusOK, gin.H{
		"key_name":      apiKey.Name,
		"rate_limit":    apiKey.RateLimit,
		"usage_history": usage,
		"totals": gin.H{
			"requests": totalRequests,
			"flights":  totalFlights,
			"people":   totalPeople,
			"placed":   totalPlaced,
		},
	})
}

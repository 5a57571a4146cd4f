package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListSquadrons returns every squadron's recognized call-signs
func (h *Handler) ListSquadrons(c *gin.Context) {
	sets, err := h.Squadrons.Callsigns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load squadrons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"squadrons": sets})
}

// ReplaceCallsigns overwrites one squadron's call-sign set
func (h *Handler) ReplaceCallsigns(c *gin.Context) {
	var req struct {
		Callsigns []string `json:"callsigns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Squadrons.Replace(c.Request.Context(), id, req.Callsigns); err != nil {
		h.Log.Error("callsign update failed", slog.String("squadron", id), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update callsigns"})
		return
	}

	if inv, ok := h.Callsigns.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
	c.JSON(http.StatusOK, gin.H{"message": "Callsigns updated"})
}

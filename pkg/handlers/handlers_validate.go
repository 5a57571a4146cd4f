package handlers

import (
	"net/http"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"github.com/arnavshah/flight-assigner-go/pkg/squadron"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks an assignment request without running the engine
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.People) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "At least one person is required"})
		return
	}
	if len(input.Flights) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "At least one flight is required"})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}
	if err := input.Policy.WithDefaults().Validate(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	stats := gin.H{
		"person_count": len(input.People),
		"flight_count": len(input.Flights),
	}

	// Non-standard flights are reported when the directory is reachable;
	// validation does not fail without it.
	if sets, err := h.Callsigns.Callsigns(c.Request.Context()); err == nil {
		nonStandard := []string{}
		for _, f := range input.Flights {
			if _, ok := squadron.Resolve(f.Callsign, sets); !ok {
				nonStandard = append(nonStandard, f.ID)
			}
		}
		stats["non_standard_flights"] = nonStandard
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "stats": stats})
}

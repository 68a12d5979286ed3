package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler answers GET /api/services: the bookable catalog with
// prices, durations and per-unit metadata.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": bookingService.Services()})
}

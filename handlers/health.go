package handlers

import (
	"net/http"

	"glowdesk/database"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler answers GET /health with the state of the two stores the
// platform cannot run without.
func HealthHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()
	status := http.StatusOK
	checks := gin.H{"mongo": "ok", "redis": "ok"}

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		logger.Error("Mongo health check failed", zap.Error(err))
		checks["mongo"] = "unreachable"
		status = http.StatusServiceUnavailable
	}
	if err := utils.GetCacheClient().Ping(ctx).Err(); err != nil {
		logger.Error("Redis health check failed", zap.Error(err))
		checks["redis"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}

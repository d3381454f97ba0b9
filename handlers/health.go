package handlers

import (
	"net/http"

	"shramic/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last observed dependency health.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

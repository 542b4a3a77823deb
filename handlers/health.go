package handlers

import (
	"net/http"

	"darimaids/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the last dependency check; it answers 200 even when a
// dependency is down so the process is not restarted for a backend outage.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Hi, I'm Darimaids",
		"checks":  status,
	})
}

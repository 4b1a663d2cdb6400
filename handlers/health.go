package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorly/utils"
)

// Health reports the latest stored health snapshot for mongo and redis.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

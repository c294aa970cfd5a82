package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the liveness probe.
//
//	@Summary	Ping
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/v1/ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

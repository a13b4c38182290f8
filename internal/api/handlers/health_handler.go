package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-platform/pkg/response"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "OK"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emoped-plan-backend/internal/models"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// RootHandler godoc
// @Summary     API banner
// @Tags        health
// @Produce     json
// @Success     200 {object} models.MessageResponse
// @Router      /api/ [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "E-Moped Business Plan API"})
}

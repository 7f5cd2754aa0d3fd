package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the service name and API base path.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"service": "quote-pricing", "api": "/api/v1"})
}

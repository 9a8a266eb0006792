package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports server status.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "GL Journal API up"})
}

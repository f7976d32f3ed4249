package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/vessel-intervals-go/pkg/response"
)

// Health handles GET /health
func Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/version"
)

func (s *Server) health(c *gin.Context) {
	status := database.Health(c.Request.Context(), s.deps.DB.DB())
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": status,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": status,
	})
}

func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    version.AppName,
		"version": version.Full(),
		"commit":  version.GitCommit,
	})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrail/labtrail/pkg/services"
)

type registerRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"display_name"`
}

// register creates (or returns) the account for an email and hands back its
// bearer token. The identity-provider dance happens upstream of this API.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, created, err := s.deps.Users.Register(c.Request.Context(), services.RegisterInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"user_id":      u.ID,
		"email":        u.Email,
		"display_name": u.DisplayName,
		"api_token":    u.APIToken,
	})
}

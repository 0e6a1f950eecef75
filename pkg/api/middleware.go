package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/services"
)

const (
	ctxUserKey      = "auth.user"
	ctxAdminModeKey = "auth.adminMode"

	adminModeHeader = "X-Admin-Mode"
)

// requireAuth resolves the bearer token to a user and stores it on the
// context. The X-Admin-Mode header is honored only for admin users. Failed
// lookups leave a login_failed audit row.
func requireAuth(users *services.UserService, audit *services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		u, err := users.GetByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				if auditErr := audit.Record(c.Request.Context(), services.RecordActionInput{
					Action: "login_failed",
					Detail: map[string]interface{}{"remote_addr": c.ClientIP()},
				}); auditErr != nil {
					slog.Warn("Failed to record login_failed audit row", "error", auditErr)
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			slog.Error("Token lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ctxUserKey, u)
		c.Set(ctxAdminModeKey, u.IsAdmin && c.GetHeader(adminModeHeader) == "true")
		c.Next()
	}
}

// requireAdmin guards the admin surface. Must run after requireAuth.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentUser(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// currentUser returns the authenticated user. Panics if requireAuth did not
// run, which is a routing bug.
func currentUser(c *gin.Context) *ent.User {
	return c.MustGet(ctxUserKey).(*ent.User)
}

func adminMode(c *gin.Context) bool {
	return c.GetBool(ctxAdminModeKey)
}

// requestLogger logs one line per request in the application's slog format.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

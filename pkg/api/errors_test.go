package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/labtrail/labtrail/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("email", "required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "email",
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "wrapped not found",
			err:        errors.Join(errors.New("lookup failed"), services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "conflict",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   "resource already exists",
		},
		{
			name:       "forbidden",
			err:        services.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   "operation not permitted",
		},
		{
			name:       "unexpected error stays opaque",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			mapServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "pq:", "internal detail must not leak")
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", bearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", bearerToken("Bearer abc123  "))
	assert.Empty(t, bearerToken("bearer abc123"), "scheme is case-sensitive")
	assert.Empty(t, bearerToken("Basic abc123"))
	assert.Empty(t, bearerToken(""))
}

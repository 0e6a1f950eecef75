package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus reports database connectivity for the health endpoint.
type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

const healthCheckTimeout = 5 * time.Second

// Health pings the database with a short timeout.
func Health(ctx context.Context, db *stdsql.DB) HealthStatus {
	if db == nil {
		return HealthStatus{Healthy: false, Message: "database not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}
	return HealthStatus{Healthy: true}
}

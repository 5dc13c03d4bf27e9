package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coolassistant.app/internal/ports"
)

const (
	statusHealthy   = ports.HealthStatusHealthy
	statusUnhealthy = ports.HealthStatusUnhealthy
	statusDegraded  = ports.HealthStatusDegraded
)

// DatabaseHealthChecker pings the database and reports pool statistics
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "database", Details: make(map[string]interface{})}

	if d.db == nil {
		status.Status = statusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = statusHealthy
	status.Details["dialect"] = d.db.Dialector.Name()
	status.Details["ping_ms"] = time.Since(start).Milliseconds()
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse
	return status
}

package handler

import (
	"context"
	"net/http"
	"time"

	"medical-scheduling-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const healthCheckTimeout = 5 * time.Second

// PoolStats is the database/sql pool snapshot reported by the health check.
type PoolStats struct {
	OpenConnections int `json:"open_connections"`
	InUse           int `json:"in_use"`
	Idle            int `json:"idle"`
	MaxOpen         int `json:"max_open"`
}

type HealthStatus struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Database *PoolStats        `json:"database,omitempty"`
}

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
	log   *logrus.Logger
}

// NewHealthHandler accepts a nil redis client when the cache is disabled.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
		log:   log,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := HealthStatus{Status: "healthy", Checks: map[string]string{}}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
		stats := sqlDB.Stats()
		status.Database = &PoolStats{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			MaxOpen:         stats.MaxOpenConnections,
		}
	}
	if err != nil {
		h.log.Warnf("Health check: database unreachable: %+v", err)
		status.Status = "unhealthy"
		status.Checks["database"] = "unreachable"
	} else {
		status.Checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.log.Warnf("Health check: redis unreachable: %+v", err)
			status.Status = "unhealthy"
			status.Checks["redis"] = "unreachable"
		} else {
			status.Checks["redis"] = "ok"
		}
	}

	if status.Status != "healthy" {
		response.ServiceUnavailable(w, "Service unavailable", status)
		return
	}
	response.Success(w, http.StatusOK, "Service healthy", status)
}

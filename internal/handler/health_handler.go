package handler

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// DBPinger is satisfied by *sqlx.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the backing stores are reachable
type HealthHandler struct {
	cache domain.Cache
	db    DBPinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cache domain.Cache, db DBPinger) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Check pings Redis and the database. Any failure answers 503.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: map[string]string{}}
	record := func(name string, err error) {
		if err != nil {
			logger.Get().Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			return
		}
		resp.Checks[name] = "ok"
	}
	record("redis", h.cache.Ping(ctx))
	record("database", h.db.PingContext(ctx))

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}

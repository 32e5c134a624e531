package info

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Started string `json:"started"`
	Uptime  string `json:"uptime"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type handler struct {
	service string
	version string
	started time.Time
	ping    Pinger
}

func (h *handler) getInfoHandler(c *fiber.Ctx) error {
	return helper.SuccessResponse(c, ServiceInfo{
		Service: h.service,
		Version: h.version,
		Started: h.started.UTC().Format(time.RFC3339),
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *handler) getHealthHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()
	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			helper.Logger.Warn().Err(err).Msg("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(helper.Success{
				Success: false,
				Status:  fiber.StatusServiceUnavailable,
				Data:    HealthStatus{Status: "down", Database: err.Error()},
			})
		}
	}
	return helper.SuccessResponse(c, HealthStatus{Status: "up", Database: "ok"})
}

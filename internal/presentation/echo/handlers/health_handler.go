package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	healthCheck *use_cases.HealthCheckUseCase
}

func NewHealthHandler(container *use_cases.Container) *HealthHandler {
	return &HealthHandler{
		healthCheck: container.HealthCheck,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.healthCheck.Execute(c.Request().Context()); err != nil {
		logrus.WithError(err).Warn("health check failed")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

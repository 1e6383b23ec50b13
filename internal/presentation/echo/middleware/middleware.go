package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/infrastructure/metrics"
	"github.com/sirupsen/logrus"
)

func TraceID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		traceID := c.Request().Header.Get("X-Trace-Id")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Response().Header().Set("X-Trace-Id", traceID)
		c.Set("trace_id", traceID)
		return next(c)
	}
}

// RequestLogger runs after the error handler has written the response so
// the logged status is the one the client saw.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		logrus.WithFields(logrus.Fields{
			"trace_id":  c.Get("trace_id"),
			"method":    c.Request().Method,
			"path":      c.Request().URL.Path,
			"status":    c.Response().Status,
			"duration":  time.Since(start).String(),
			"remote_ip": c.RealIP(),
		}).Info("request handled")
		return nil
	}
}

// Metrics labels by route template to keep the path label bounded.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
		return nil
	}
}

func Recovery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithFields(logrus.Fields{
					"trace_id": c.Get("trace_id"),
					"path":     c.Request().URL.Path,
				}).Errorf("panic recovered: %v", r)
				err = c.JSON(http.StatusInternalServerError, map[string]interface{}{
					"code":    "INTERNAL_ERROR",
					"message": "an unexpected error occurred",
				})
			}
		}()
		return next(c)
	}
}

package echo

import (
	echofw "github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/infrastructure/metrics"
	"github.com/mirola777/songboard/internal/presentation/echo/handlers"
	"github.com/mirola777/songboard/internal/presentation/echo/middleware"
	"github.com/mirola777/songboard/internal/utils/config"
)

func ConfigureRoutes(e *echofw.Echo, container *use_cases.Container, cfg *config.Config) {
	e.Use(middleware.Recovery)
	e.Use(middleware.TraceID)
	e.Use(middleware.RequestLogger)
	e.Use(middleware.Metrics)

	healthHandler := handlers.NewHealthHandler(container)
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echofw.WrapHandler(metrics.Handler()))

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	requestHandler := handlers.NewRequestHandler(container)
	requests := e.Group("/requests")
	requests.POST("", requestHandler.Search, limiter.Middleware)
	requests.POST("/submit", requestHandler.Submit, limiter.Middleware)
	requests.GET("", requestHandler.List)
	requests.POST("/:id/status", requestHandler.UpdateStatus)
	requests.POST("/:id/priority", requestHandler.SetPriority)
	requests.DELETE("/:id", requestHandler.Delete)

	paymentHandler := handlers.NewPaymentHandler(container, cfg.AppURL+cfg.PaymentReturnPath)
	requests.POST("/:id/pay", paymentHandler.Pay)
	requests.GET("/:id/payment-status", paymentHandler.PaymentStatus)
	requests.GET("/:id/payment", paymentHandler.PaymentSummary)

	payments := e.Group("/payments")
	payments.Any("/callback", paymentHandler.Callback)
	payments.GET("/return", paymentHandler.Return)
}

package echo

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	echofw "github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/utils/config"
	"github.com/sirupsen/logrus"
)

type Server struct {
	echo   *echofw.Echo
	config *config.Config
}

func NewServer(cfg *config.Config, container *use_cases.Container) *Server {
	e := echofw.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	ConfigureRoutes(e, container, cfg)

	return &Server{
		echo:   e,
		config: cfg,
	}
}

func (s *Server) Echo() *echofw.Echo {
	return s.echo
}

// Start serves until SIGINT/SIGTERM, then drains within GracefulTimeout.
// The channel is closed after a clean shutdown.
func (s *Server) Start() <-chan error {
	errC := make(chan error, 1)

	go func() {
		if err := s.echo.Start(":" + s.config.AppPort); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
		<-quit

		logrus.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), s.config.GracefulTimeout)
		defer cancel()

		if err := s.echo.Shutdown(ctx); err != nil {
			errC <- err
		}
		close(errC)
	}()

	logrus.WithField("port", s.config.AppPort).Info("server started")
	return errC
}

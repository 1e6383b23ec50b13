package main

import (
	"fmt"
	"os"

	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/infrastructure/catalog"
	"github.com/mirola777/songboard/internal/infrastructure/epay"
	gormdb "github.com/mirola777/songboard/internal/infrastructure/gorm"
	echoserver "github.com/mirola777/songboard/internal/presentation/echo"
	"github.com/mirola777/songboard/internal/utils/config"
	"github.com/mirola777/songboard/internal/utils/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "songboard",
		Short:        "Campus song request board",
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  runServe,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  runMigrate,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, nil, err
	}

	db, err := gormdb.NewConnection(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := gormdb.RunMigrations(db); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return cfg, db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, _, err := setup()
	if err != nil {
		return err
	}
	logrus.Info("migrations applied")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}

	spotify := catalog.NewSpotifyClient(catalog.Config{
		ClientID:      cfg.SpotifyClientID,
		ClientSecret:  cfg.SpotifyClientSecret,
		TokenURL:      cfg.SpotifyTokenURL,
		APIURL:        cfg.SpotifyAPIURL,
		Timeout:       cfg.CatalogTimeout,
		SearchLimit:   cfg.CatalogSearchLimit,
		RetryInterval: cfg.CatalogRetryInterval,
	})
	if err := spotify.Start(); err != nil {
		logrus.WithError(err).Warn("catalog unavailable at startup, will keep retrying")
	}
	defer spotify.Stop()

	gateway := epay.NewGateway(epay.Config{
		MerchantID:  cfg.EpayMerchantID,
		MerchantKey: cfg.EpayMerchantKey,
		APIURL:      cfg.EpayAPIURL,
		NotifyURL:   cfg.NotifyURL(),
		ReturnURL:   cfg.ReturnURL(),
	})

	if cfg.AdminSecret == "" {
		logrus.Warn("ADMIN_PASSWORD is not set, admin operations are disabled")
	}

	container, err := use_cases.NewContainer(db, cfg, spotify, gateway)
	if err != nil {
		return err
	}

	server := echoserver.NewServer(cfg, container)
	if err := <-server.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppPort         string
	AppURL          string
	GracefulTimeout time.Duration

	LogLevel  string
	LogFormat string

	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	AdminSecret          string
	DefaultPaymentAmount decimal.Decimal
	OrderPrefix          string
	PaymentReturnPath    string
	PaymentCacheSize     int

	SpotifyClientID      string
	SpotifyClientSecret  string
	SpotifyTokenURL      string
	SpotifyAPIURL        string
	CatalogTimeout       time.Duration
	CatalogSearchLimit   int
	CatalogRetryInterval time.Duration

	EpayMerchantID  string
	EpayMerchantKey string
	EpayAPIURL      string

	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:         getEnv("APP_PORT", "3000"),
		AppURL:          getEnv("APP_URL", "http://localhost:3000"),
		GracefulTimeout: parseDuration(getEnv("GRACEFUL_TIMEOUT", "5s"), 5*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "songs.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "songboard"),
		DBPassword: getEnv("DB_PASSWORD", "songboard"),
		DBName:     getEnv("DB_NAME", "songboard"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminSecret:          getEnv("ADMIN_PASSWORD", ""),
		DefaultPaymentAmount: parseDecimal(getEnv("DEFAULT_PAYMENT_AMOUNT", "5.00"), decimal.RequireFromString("5.00")),
		OrderPrefix:          getEnv("ORDER_PREFIX", "song"),
		PaymentReturnPath:    getEnv("PAYMENT_RETURN_PATH", "/songs"),
		PaymentCacheSize:     parseInt(getEnv("PAYMENT_CACHE_SIZE", "1024"), 1024),

		SpotifyClientID:      getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret:  getEnv("SPOTIFY_CLIENT_SECRET", ""),
		SpotifyTokenURL:      getEnv("SPOTIFY_TOKEN_URL", "https://accounts.spotify.com/api/token"),
		SpotifyAPIURL:        getEnv("SPOTIFY_API_URL", "https://api.spotify.com/v1"),
		CatalogTimeout:       parseDuration(getEnv("CATALOG_TIMEOUT", "10s"), 10*time.Second),
		CatalogSearchLimit:   parseInt(getEnv("CATALOG_SEARCH_LIMIT", "20"), 20),
		CatalogRetryInterval: parseDuration(getEnv("CATALOG_RETRY_INTERVAL", "30s"), 30*time.Second),

		EpayMerchantID:  getEnv("EPAY_MERCHANT_ID", ""),
		EpayMerchantKey: getEnv("EPAY_MERCHANT_KEY", ""),
		EpayAPIURL:      getEnv("EPAY_API_URL", ""),

		RateLimitPerSecond: parseFloat(getEnv("RATE_LIMIT_RPS", "1"), 1),
		RateLimitBurst:     parseInt(getEnv("RATE_LIMIT_BURST", "10"), 10),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func (c *Config) NotifyURL() string {
	return c.AppURL + "/payments/callback"
}

func (c *Config) ReturnURL() string {
	return c.AppURL + "/payments/return"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func parseDecimal(value string, fallback decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsPositive() {
		return fallback
	}
	return d
}

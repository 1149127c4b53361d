package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection, secrets)
// - default: values common across all environments (timezone, timeouts, booking windows)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Stripe  StripeConfig
	Redis   RedisConfig
	Embed   EmbedConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the external auth service; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type StripeConfig struct {
	SecretKey        string        `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret    string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	WebhookTolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
	Currency         string        `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

// An empty Addr disables the availability cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"30s"`
}

type EmbedConfig struct {
	BaseURL string        `envconfig:"EMBED_BASE_URL" default:"https://api.cal.com/v1"`
	APIKey  string        `envconfig:"EMBED_API_KEY"`
	Timeout time.Duration `envconfig:"EMBED_TIMEOUT" default:"5s"`
	// SlotLength applies when the widget reports start times only.
	SlotLength time.Duration `envconfig:"EMBED_SLOT_LENGTH" default:"1h"`
}

type BookingConfig struct {
	DefaultWindowDays int           `envconfig:"BOOKING_DEFAULT_WINDOW_DAYS" default:"30"`
	MaxWindowDays     int           `envconfig:"BOOKING_MAX_WINDOW_DAYS" default:"62"`
	PendingTTL        time.Duration `envconfig:"PENDING_TTL" default:"30m"`
	SweepInterval     time.Duration `envconfig:"PENDING_SWEEP_INTERVAL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (b BookingConfig) DefaultWindow() time.Duration {
	return time.Duration(b.DefaultWindowDays) * 24 * time.Hour
}

func (b BookingConfig) MaxWindow() time.Duration {
	return time.Duration(b.MaxWindowDays) * 24 * time.Hour
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Stripe: StripeConfig{
			WebhookSecret:    "whsec_test",
			WebhookTolerance: 5 * time.Minute,
			Currency:         "usd",
		},
		Redis: RedisConfig{
			CacheTTL: 30 * time.Second,
		},
		Embed: EmbedConfig{
			BaseURL:    "http://localhost:0",
			Timeout:    time.Second,
			SlotLength: time.Hour,
		},
		Booking: BookingConfig{
			DefaultWindowDays: 30,
			MaxWindowDays:     62,
			PendingTTL:        30 * time.Minute,
			SweepInterval:     time.Minute,
		},
	}
}

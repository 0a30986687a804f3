package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the ops HTTP server, the database
// connection, pipeline processing, third-party verification and manual review.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Ops contains the operational HTTP server (metrics, pprof) configuration.
	Ops struct {
		// Addr is the address and port the ops server will listen on
		Addr string `env:"OPS_ADDR" env-default:":9090" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request
		ReadTimeout time.Duration `env:"OPS_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"OPS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"OPS_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"OPS_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"OPS_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"ops"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"lending" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"lending" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"lending" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Pipeline configures the automated workflow.
	Pipeline struct {
		// QueueMaxWorkers bounds concurrent pipeline jobs; runs for different
		// applications are independent and may execute in parallel.
		QueueMaxWorkers int `env:"PIPELINE_QUEUE_MAX_WORKERS" env-default:"25" yaml:"queueMaxWorkers"`
		// RulesPath is the path of the business-rule document.
		RulesPath string `env:"PIPELINE_RULES_PATH" env-default:"rules.yml" yaml:"rulesPath"`
	} `yaml:"pipeline"`

	// Verification configures the best-effort third-party lookups.
	Verification struct {
		// Timeout bounds each individual lookup; a timed-out source is
		// recorded as a gap, it never blocks the other sources.
		Timeout time.Duration `env:"VERIFICATION_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"verification"`

	// Review configures manual review routing.
	Review struct {
		// AutoAssign enables picking a reviewer at enqueue time. When
		// disabled (or when nobody qualifies) tasks stay pending.
		AutoAssign bool `env:"REVIEW_AUTO_ASSIGN" env-default:"true" yaml:"autoAssign"`
		// AmountThreshold is the loan amount above which an application
		// always goes to manual review regardless of the automated decision.
		AmountThreshold float64 `env:"REVIEW_AMOUNT_THRESHOLD" env-default:"1000000" yaml:"amountThreshold"`
	} `yaml:"review"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

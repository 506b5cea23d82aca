package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// background workers, external collaborators and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes caps multipart bodies of image, avatar and document uploads
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"33554432" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins allowed to call the API, empty allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// EnablePprof exposes the pprof profiling handlers
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"yokeair" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// StatementTimeout aborts queries running longer than this, 0 keeps the server default
		StatementTimeout time.Duration `env:"DATABASE_STATEMENT_TIMEOUT" env-default:"0" yaml:"statementTimeout"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to issue and verify bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Worker configures the notification job queue
	Worker struct {
		// MaxWorkers is the number of notification jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is the maximum number of delivery attempts of a notification
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RateLimitSnooze delays a notification the provider refused due to rate limiting
		RateLimitSnooze time.Duration `env:"WORKER_RATE_LIMIT_SNOOZE" env-default:"1m" yaml:"rateLimitSnooze"`
	} `yaml:"worker"`

	// Assets configures the S3 compatible bucket holding images, avatars and documents
	Assets struct {
		Bucket string `env:"ASSETS_BUCKET" env-default:"yokeair" yaml:"bucket"`
		Region string `env:"ASSETS_REGION" env-default:"us-east-1" yaml:"region"`
		// Endpoint points to a non-AWS S3 implementation (minio, localstack); empty uses AWS
		Endpoint        string `env:"ASSETS_ENDPOINT" yaml:"endpoint"`
		AccessKeyID     string `env:"ASSETS_ACCESS_KEY_ID" yaml:"accessKeyId"`
		SecretAccessKey string `env:"ASSETS_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		// PublicBaseURL is prefixed to object keys to build public asset URLs
		PublicBaseURL string `env:"ASSETS_PUBLIC_BASE_URL" yaml:"publicBaseUrl"`
	} `yaml:"assets"`

	// Notifications configures the Mailjet transactional email account
	Notifications struct {
		PublicKey   string `env:"MAILJET_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey  string `env:"MAILJET_PRIVATE_KEY" yaml:"privateKey"`
		SenderEmail string `env:"MAILJET_SENDER_EMAIL" env-default:"no-reply@yokeair.com" yaml:"senderEmail"`
		SenderName  string `env:"MAILJET_SENDER_NAME" env-default:"Yokeair" yaml:"senderName"`
		// Templates maps notification templates to Mailjet template ids
		Templates map[string]int64 `env:"MAILJET_TEMPLATES" yaml:"templates"`
	} `yaml:"notifications"`

	// Cache configures the Redis search result cache
	Cache struct {
		Addr     string `env:"CACHE_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"CACHE_PASSWORD" yaml:"password"`
		DB       int    `env:"CACHE_DB" env-default:"0" yaml:"db"`
		// TTL of cached search results. Unset or 0 disables the cache.
		TTL time.Duration `env:"CACHE_TTL" yaml:"ttl"`
	} `yaml:"cache"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
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

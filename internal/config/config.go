package config

import "time"

// Environment names accepted in Config.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the root application configuration.
type Config struct {
	Environment string        `yaml:"environment" env:"APP_ENV" env-default:"development"`
	Server      ServerConfig  `yaml:"server"`
	Log         LogConfig     `yaml:"log"`
	CORS        CORSConfig    `yaml:"cors"`
	Relay       RelayConfig   `yaml:"relay"`
	CMS         CMSConfig     `yaml:"cms"`
	Session     SessionConfig `yaml:"session"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout defaults to 0 because live update streams stay open indefinitely.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RelayConfig holds live update relay settings.
type RelayConfig struct {
	KeepAliveInterval   time.Duration `yaml:"keepalive_interval"     env:"RELAY_KEEPALIVE_INTERVAL"     env-default:"30s"`
	SubscriberBuffer    int           `yaml:"subscriber_buffer"      env:"RELAY_SUBSCRIBER_BUFFER"      env-default:"16"`
	IngestRatePerMinute int           `yaml:"ingest_rate_per_minute" env:"RELAY_INGEST_RATE_PER_MINUTE" env-default:"120"`
	MaxPayloadBytes     int64         `yaml:"max_payload_bytes"      env:"RELAY_MAX_PAYLOAD_BYTES"      env-default:"1048576"`
}

// CMSConfig holds settings for the content backend that stores timesheets and tasks.
type CMSConfig struct {
	BaseURL  string        `yaml:"base_url"  env:"CMS_BASE_URL"  env-default:"http://localhost:1337"`
	Timeout  time.Duration `yaml:"timeout"   env:"CMS_TIMEOUT"   env-default:"10s"`
	APIToken string        `yaml:"api_token" env:"CMS_API_TOKEN"`
}

// SessionConfig holds the session cookie contract.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"jwt"`
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"         env-default:"24h"`
	// JWTSecret, when set, enables signature checks on the session token.
	// Leave empty to accept any non-empty cookie and let the backend decide.
	JWTSecret string `yaml:"jwt_secret" env:"SESSION_JWT_SECRET"`
}

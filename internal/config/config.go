package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Listing   ListingConfig   `yaml:"listing"`
	Digest    DigestConfig    `yaml:"digest"`
	Redis     RedisConfig     `yaml:"redis"`
	Broker    BrokerConfig    `yaml:"broker"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Accept-Language"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	SeedOnStartup   bool          `yaml:"seed_on_startup"  env:"SERVER_SEED_ON_STARTUP"  env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"spasizverya"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for mutating endpoints.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	MutationsPerMin int           `yaml:"mutations_per_min" env:"RATE_LIMIT_MUTATIONS_PER_MIN" env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LifecycleConfig is the single source of status partitions and owner transitions.
// List values are comma separated; transitions use "source:target|target;source:target".
type LifecycleConfig struct {
	ModerationStatus string `yaml:"moderation_status" env:"LIFECYCLE_MODERATION_STATUS" env-default:"Требует модерации"`
	ArchivedStatus   string `yaml:"archived_status"   env:"LIFECYCLE_ARCHIVED_STATUS"   env-default:"В архиве"`
	DefaultRole      string `yaml:"default_role"      env:"LIFECYCLE_DEFAULT_ROLE"      env-default:"Пользователь"`

	ModerationRaw  string `yaml:"moderation"         env:"LIFECYCLE_MODERATION"         env-default:"Требует модерации"`
	ActiveRaw      string `yaml:"active"             env:"LIFECYCLE_ACTIVE"             env-default:"Активно,Потеряно,Найдено,Отдам в добрые руки"`
	CompletedRaw   string `yaml:"completed"          env:"LIFECYCLE_COMPLETED"          env-default:"Найдено владельцем,Передано владельцу"`
	ArchivedRaw    string `yaml:"archived"           env:"LIFECYCLE_ARCHIVED"           env-default:"В архиве"`
	CreatableRaw   string `yaml:"creatable"          env:"LIFECYCLE_CREATABLE"          env-default:"Потеряно,Найдено,Отдам в добрые руки"`
	TransitionsRaw string `yaml:"owner_transitions"  env:"LIFECYCLE_OWNER_TRANSITIONS"  env-default:"Потеряно:Найдено владельцем|В архиве;Найдено:Передано владельцу|В архиве;Отдам в добрые руки:Передано владельцу|В архиве"`

	RetentionDays int           `yaml:"retention_days" env:"LIFECYCLE_RETENTION_DAYS" env-default:"30"`
	DigestWindow  time.Duration `yaml:"digest_window"  env:"LIFECYCLE_DIGEST_WINDOW"  env-default:"168h"`

	// Parsed from the raw fields during validation.
	Moderation       []string            `yaml:"-" env:"-"`
	Active           []string            `yaml:"-" env:"-"`
	Completed        []string            `yaml:"-" env:"-"`
	Archived         []string            `yaml:"-" env:"-"`
	Creatable        []string            `yaml:"-" env:"-"`
	OwnerTransitions map[string][]string `yaml:"-" env:"-"`
}

// ListingConfig holds advertisement list pagination settings.
type ListingConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"LISTING_DEFAULT_PAGE_SIZE" env-default:"12"`
	MaxPageSize     int `yaml:"max_page_size"     env:"LISTING_MAX_PAGE_SIZE"     env-default:"48"`
}

// DigestConfig holds weekly digest delivery settings. An empty ResendAPIKey logs
// messages instead of sending them.
type DigestConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"DIGEST_RESEND_API_KEY"`
	From         string `yaml:"from"           env:"DIGEST_FROM"           env-default:"noreply@spasizverya.local"`
	Subject      string `yaml:"subject"        env:"DIGEST_SUBJECT"        env-default:"Еженедельный отчет по сайту \"СпасиЗверя\""`
}

// RedisConfig holds the filter-options cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"10m"`
	Prefix   string        `yaml:"prefix"   env:"REDIS_PREFIX"   env-default:"spasizverya:"`
}

// BrokerConfig holds lifecycle event publishing settings. An empty URL disables publishing.
type BrokerConfig struct {
	URL         string `yaml:"url"          env:"BROKER_URL"`
	QueuePrefix string `yaml:"queue_prefix" env:"BROKER_QUEUE_PREFIX" env-default:"spasizverya."`
}

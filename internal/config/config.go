package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	DB            DBConfig
	JWT           JWTConfig
	Log           LogConfig
	CORS          CORSConfig
	Redis         RedisConfig
	RateLimit     RateLimitConfig
	Storage       StorageConfig
	Email         EmailConfig
	Reports       ReportsConfig
	Notifications NotificationsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds the property-update rate limiter settings.
type RateLimitConfig struct {
	PropertyUpdates int           `mapstructure:"property_updates"`
	Window          time.Duration `mapstructure:"window"`
}

// StorageConfig selects and configures the object storage used for export archives.
// An empty Provider disables archiving.
type StorageConfig struct {
	Provider      string `mapstructure:"provider"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider     string `mapstructure:"provider"`
	Region       string `mapstructure:"region"`
	ResendAPIKey string `mapstructure:"resend_api_key"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	FrontendURL  string `mapstructure:"frontend_url"`
}

// ReportsConfig holds operations report settings.
type ReportsConfig struct {
	DefaultCommissionPercentage float64 `mapstructure:"default_commission_percentage"`
}

// NotificationsConfig holds notification retention settings.
type NotificationsConfig struct {
	RetentionDays        int           `mapstructure:"retention_days"`
	CleanupInterval      time.Duration `mapstructure:"cleanup_interval"`
	CleanupWorkerEnabled bool          `mapstructure:"cleanup_worker_enabled"`
}

// Load reads configuration from an optional .env file and environment variables
// with the ESTATEHUB_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ESTATEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "estatehub")
	v.SetDefault("db.password", "estatehub_secret")
	v.SetDefault("db.name", "estatehub_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "estatehub")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.property_updates", 10)
	v.SetDefault("rate_limit.window", "60s")

	// Storage defaults (archiving disabled)
	v.SetDefault("storage.provider", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "estatehub-exports")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.resend_api_key", "")
	v.SetDefault("email.from_address", "noreply@estatehub.local")
	v.SetDefault("email.from_name", "EstateHub")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	v.SetDefault("reports.default_commission_percentage", 4.0)

	v.SetDefault("notifications.retention_days", 30)
	v.SetDefault("notifications.cleanup_interval", "1h")
	v.SetDefault("notifications.cleanup_worker_enabled", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                           "ESTATEHUB_SERVER_PORT",
		"server.read_timeout":                   "ESTATEHUB_SERVER_READ_TIMEOUT",
		"server.write_timeout":                  "ESTATEHUB_SERVER_WRITE_TIMEOUT",
		"server.environment":                    "ESTATEHUB_SERVER_ENVIRONMENT",
		"db.host":                               "ESTATEHUB_DB_HOST",
		"db.port":                               "ESTATEHUB_DB_PORT",
		"db.user":                               "ESTATEHUB_DB_USER",
		"db.password":                           "ESTATEHUB_DB_PASSWORD",
		"db.name":                               "ESTATEHUB_DB_NAME",
		"db.sslmode":                            "ESTATEHUB_DB_SSLMODE",
		"db.max_open":                           "ESTATEHUB_DB_MAX_OPEN",
		"db.max_idle":                           "ESTATEHUB_DB_MAX_IDLE",
		"jwt.secret":                            "ESTATEHUB_JWT_SECRET",
		"jwt.access_expiry":                     "ESTATEHUB_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":                    "ESTATEHUB_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                            "ESTATEHUB_JWT_ISSUER",
		"log.level":                             "ESTATEHUB_LOG_LEVEL",
		"log.format":                            "ESTATEHUB_LOG_FORMAT",
		"cors.allowed_origins":                  "ESTATEHUB_CORS_ALLOWED_ORIGINS",
		"redis.addr":                            "ESTATEHUB_REDIS_ADDR",
		"redis.password":                        "ESTATEHUB_REDIS_PASSWORD",
		"redis.db":                              "ESTATEHUB_REDIS_DB",
		"rate_limit.property_updates":           "ESTATEHUB_RATE_LIMIT_PROPERTY_UPDATES",
		"rate_limit.window":                     "ESTATEHUB_RATE_LIMIT_WINDOW",
		"storage.provider":                      "ESTATEHUB_STORAGE_PROVIDER",
		"storage.region":                        "ESTATEHUB_STORAGE_REGION",
		"storage.bucket":                        "ESTATEHUB_STORAGE_BUCKET",
		"storage.endpoint":                      "ESTATEHUB_STORAGE_ENDPOINT",
		"storage.access_key":                    "ESTATEHUB_STORAGE_ACCESS_KEY",
		"storage.secret_key":                    "ESTATEHUB_STORAGE_SECRET_KEY",
		"storage.use_ssl":                       "ESTATEHUB_STORAGE_USE_SSL",
		"storage.presign_expiry":                "ESTATEHUB_STORAGE_PRESIGN_EXPIRY",
		"email.provider":                        "ESTATEHUB_EMAIL_PROVIDER",
		"email.region":                          "ESTATEHUB_EMAIL_REGION",
		"email.resend_api_key":                  "ESTATEHUB_EMAIL_RESEND_API_KEY",
		"email.from_address":                    "ESTATEHUB_EMAIL_FROM_ADDRESS",
		"email.from_name":                       "ESTATEHUB_EMAIL_FROM_NAME",
		"email.frontend_url":                    "ESTATEHUB_EMAIL_FRONTEND_URL",
		"reports.default_commission_percentage": "ESTATEHUB_REPORTS_DEFAULT_COMMISSION_PERCENTAGE",
		"notifications.retention_days":          "ESTATEHUB_NOTIFICATIONS_RETENTION_DAYS",
		"notifications.cleanup_interval":        "ESTATEHUB_NOTIFICATIONS_CLEANUP_INTERVAL",
		"notifications.cleanup_worker_enabled":  "ESTATEHUB_NOTIFICATIONS_CLEANUP_WORKER_ENABLED",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ESTATEHUB_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ESTATEHUB_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
	cfg.RateLimit = RateLimitConfig{
		PropertyUpdates: v.GetInt("rate_limit.property_updates"),
		Window:          v.GetDuration("rate_limit.window"),
	}
	cfg.Storage = StorageConfig{
		Provider:      v.GetString("storage.provider"),
		Region:        v.GetString("storage.region"),
		Bucket:        v.GetString("storage.bucket"),
		Endpoint:      v.GetString("storage.endpoint"),
		AccessKey:     v.GetString("storage.access_key"),
		SecretKey:     v.GetString("storage.secret_key"),
		UseSSL:        v.GetBool("storage.use_ssl"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:     v.GetString("email.provider"),
		Region:       v.GetString("email.region"),
		ResendAPIKey: v.GetString("email.resend_api_key"),
		FromAddress:  v.GetString("email.from_address"),
		FromName:     v.GetString("email.from_name"),
		FrontendURL:  v.GetString("email.frontend_url"),
	}
	cfg.Reports = ReportsConfig{
		DefaultCommissionPercentage: v.GetFloat64("reports.default_commission_percentage"),
	}
	cfg.Notifications = NotificationsConfig{
		RetentionDays:        v.GetInt("notifications.retention_days"),
		CleanupInterval:      v.GetDuration("notifications.cleanup_interval"),
		CleanupWorkerEnabled: v.GetBool("notifications.cleanup_worker_enabled"),
	}

	return cfg, nil
}

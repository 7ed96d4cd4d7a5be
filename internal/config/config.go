package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	RequestTimeout time.Duration
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Auth           AuthConfig
	CORS           CORSConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type JWTConfig struct {
	SecretKey string
	Expiry    time.Duration
}

// AuthConfig controls password hashing cost and login throttling.
type AuthConfig struct {
	BcryptCost      int
	MaxFailedLogins int
	LockoutWindow   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

var envBindings = map[string]string{
	"server.port":            "PORT",
	"server.request_timeout": "SERVER_REQUEST_TIMEOUT",

	"database.host":              "DATABASE_HOST",
	"database.port":              "DATABASE_PORT",
	"database.user":              "DATABASE_USER",
	"database.password":          "DATABASE_PASSWORD",
	"database.name":              "DATABASE_NAME",
	"database.ssl_mode":          "DATABASE_SSL_MODE",
	"database.max_open_conns":    "DATABASE_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DATABASE_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DATABASE_CONN_MAX_LIFETIME",
	"database.migrate":           "DATABASE_MIGRATE",

	"redis.host":     "REDIS_HOST",
	"redis.port":     "REDIS_PORT",
	"redis.password": "REDIS_PASSWORD",
	"redis.db":       "REDIS_DB",

	"jwt.secret_key": "JWT_SECRET_KEY",
	"jwt.expiry":     "JWT_EXPIRY",

	"auth.bcrypt_cost":       "AUTH_BCRYPT_COST",
	"auth.max_failed_logins": "AUTH_MAX_FAILED_LOGINS",
	"auth.lockout_window":    "AUTH_LOCKOUT_WINDOW",

	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
}

// Init points viper at the .env file and binds every environment variable.
// Environment variables win over values read from the file.
func Init(envFile string) {
	viper.SetConfigFile(envFile)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	for key, env := range envBindings {
		viper.BindEnv(key, env)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("[CONFIG] Config file not found, using environment and defaults: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.request_timeout", 30*time.Second)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.name", "corebank")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	viper.SetDefault("database.migrate", true)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("jwt.expiry", 24*time.Hour)

	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("auth.max_failed_logins", 5)
	viper.SetDefault("auth.lockout_window", 15*time.Minute)

	viper.SetDefault("cors.allowed_origins", []string{"https://*", "http://*"})
}

// splitList accepts both comma and space separated values. Viper splits
// environment strings on whitespace only.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Load returns the configuration with defaults applied.
// It fails when no JWT secret is configured.
func Load() (*Config, error) {
	setDefaults()

	cfg := &Config{
		Port:           viper.GetString("server.port"),
		RequestTimeout: viper.GetDuration("server.request_timeout"),
		Database: DatabaseConfig{
			Host:            viper.GetString("database.host"),
			Port:            viper.GetString("database.port"),
			User:            viper.GetString("database.user"),
			Password:        viper.GetString("database.password"),
			Name:            viper.GetString("database.name"),
			SSLMode:         viper.GetString("database.ssl_mode"),
			MaxOpenConns:    viper.GetInt("database.max_open_conns"),
			MaxIdleConns:    viper.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: viper.GetDuration("database.conn_max_lifetime"),
			Migrate:         viper.GetBool("database.migrate"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetString("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey: viper.GetString("jwt.secret_key"),
			Expiry:    viper.GetDuration("jwt.expiry"),
		},
		Auth: AuthConfig{
			BcryptCost:      viper.GetInt("auth.bcrypt_cost"),
			MaxFailedLogins: viper.GetInt("auth.max_failed_logins"),
			LockoutWindow:   viper.GetDuration("auth.lockout_window"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetStringSlice("cors.allowed_origins")),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt.secret_key (JWT_SECRET_KEY) must be set")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("server.request_timeout must be positive")
	}
	if cfg.JWT.Expiry <= 0 {
		return nil, errors.New("jwt.expiry must be positive")
	}

	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const devJWTSecret = "dev-secret"

// Config is built once at startup and handed to constructors; nothing reads
// it through globals.
type Config struct {
	Env              string        `yaml:"env"`
	ServerPort       string        `yaml:"port"`
	DatabaseURL      string        `yaml:"databaseURL"`
	JWTSecret        string        `yaml:"jwtSecret"`
	TokenTTL         time.Duration `yaml:"tokenTTL"`
	BcryptCost       int           `yaml:"bcryptCost"`
	CORSOrigins      []string      `yaml:"corsOrigins"`
	DBMaxConns       int32         `yaml:"dbMaxConns"`
	DBConnectTimeout time.Duration `yaml:"dbConnectTimeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdownTimeout"`
	LogBackend       string        `yaml:"logBackend"`
	LogLevel         string        `yaml:"logLevel"`
}

// Load reads the environment and then overlays the YAML file named by
// CONFIG_PATH, if set.
func Load() (*Config, error) {
	cfg := fromEnv()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if cfg.JWTSecret == "" && cfg.Env != "prod" {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Env:              getEnv("APP_ENV", "dev"),
		ServerPort:       getEnv("PORT", "3000"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenTTL:         getDuration("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost:       getInt("BCRYPT_COST", bcrypt.DefaultCost),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		DBMaxConns:       int32(getInt("DB_MAX_CONNS", 10)),
		DBConnectTimeout: getDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogBackend:       getEnv("LOG_BACKEND", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}

	if file.Env != "" {
		c.Env = file.Env
	}
	if file.ServerPort != "" {
		c.ServerPort = file.ServerPort
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
	}
	if file.BcryptCost != 0 {
		c.BcryptCost = file.BcryptCost
	}
	if len(file.CORSOrigins) > 0 {
		c.CORSOrigins = file.CORSOrigins
	}
	if file.DBMaxConns != 0 {
		c.DBMaxConns = file.DBMaxConns
	}
	if file.DBConnectTimeout != 0 {
		c.DBConnectTimeout = file.DBConnectTimeout
	}
	if file.ShutdownTimeout != 0 {
		c.ShutdownTimeout = file.ShutdownTimeout
	}
	if file.LogBackend != "" {
		c.LogBackend = file.LogBackend
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if c.Env == "prod" && c.JWTSecret == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set explicitly in prod"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

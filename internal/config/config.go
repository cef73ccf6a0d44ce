package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAppEnv          = "dev"
	defaultPort            = "5000"
	defaultDatabaseURL     = "gigbook.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "24h"
	defaultUploadDir       = "./static"
	defaultStaticURLPrefix = "/static"
	defaultLogLevel        = "info"
	defaultCORSOrigins     = "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"
)

type Config struct {
	AppEnv             string        `yaml:"app_env"`
	Port               string        `yaml:"port"`
	DatabaseURL        string        `yaml:"database_url"`
	JWTSecret          string        `yaml:"jwt_secret"`
	JWTAccessTTL       time.Duration `yaml:"-"`
	RawJWTAccessTTL    string        `yaml:"jwt_access_ttl"`
	UploadDir          string        `yaml:"upload_dir"`
	StaticURLPrefix    string        `yaml:"static_url_prefix"`
	LogLevel           string        `yaml:"log_level"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

// Load builds the runtime configuration. Precedence, lowest first:
// built-in defaults, the YAML file named by CONFIG_FILE, the environment
// (including a .env file in the working directory).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv()

	ttl, err := time.ParseDuration(strings.TrimSpace(cfg.RawJWTAccessTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL value %q: %w", cfg.RawJWTAccessTTL, err)
	}
	cfg.JWTAccessTTL = ttl

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func defaults() *Config {
	return &Config{
		AppEnv:             defaultAppEnv,
		Port:               defaultPort,
		DatabaseURL:        defaultDatabaseURL,
		JWTSecret:          defaultJWTSecret,
		RawJWTAccessTTL:    defaultJWTAccessTTL,
		UploadDir:          defaultUploadDir,
		StaticURLPrefix:    defaultStaticURLPrefix,
		LogLevel:           defaultLogLevel,
		CORSAllowedOrigins: splitList(defaultCORSOrigins),
	}
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIfNotEmpty(&c.AppEnv, fileCfg.AppEnv)
	setIfNotEmpty(&c.Port, fileCfg.Port)
	setIfNotEmpty(&c.DatabaseURL, fileCfg.DatabaseURL)
	setIfNotEmpty(&c.JWTSecret, fileCfg.JWTSecret)
	setIfNotEmpty(&c.RawJWTAccessTTL, fileCfg.RawJWTAccessTTL)
	setIfNotEmpty(&c.UploadDir, fileCfg.UploadDir)
	setIfNotEmpty(&c.StaticURLPrefix, fileCfg.StaticURLPrefix)
	setIfNotEmpty(&c.LogLevel, fileCfg.LogLevel)
	if len(fileCfg.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = fileCfg.CORSAllowedOrigins
	}
	return nil
}

func (c *Config) mergeEnv() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = os.Getenv("ENV")
	}
	setIfNotEmpty(&c.AppEnv, appEnv)
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))

	setIfNotEmpty(&c.Port, os.Getenv("PORT"))
	setIfNotEmpty(&c.DatabaseURL, os.Getenv("DATABASE_URL"))
	setIfNotEmpty(&c.JWTSecret, os.Getenv("JWT_SECRET"))
	setIfNotEmpty(&c.RawJWTAccessTTL, os.Getenv("JWT_ACCESS_TTL"))
	setIfNotEmpty(&c.UploadDir, os.Getenv("UPLOAD_DIR"))
	setIfNotEmpty(&c.StaticURLPrefix, os.Getenv("STATIC_URL_PREFIX"))
	setIfNotEmpty(&c.LogLevel, os.Getenv("LOG_LEVEL"))
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		c.CORSAllowedOrigins = splitList(extra)
	}
	c.StaticURLPrefix = "/" + strings.Trim(c.StaticURLPrefix, "/")
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=cornerstore port=5432 sslmode=disable"

type Config struct {
	HTTPPort             string `yaml:"http_port"`
	DatabaseDriver       string `yaml:"database_driver"` // postgres | sqlite
	DatabaseDSN          string `yaml:"database_dsn"`
	DBLogLevel           string `yaml:"db_log_level"` // silent | error | warn | info
	SeedData             bool   `yaml:"seed_data"`
	CORSOrigins          string `yaml:"cors_allowed_origins"`
	StrictProductUpdates bool   `yaml:"strict_product_updates"`
	OTelExporter         string `yaml:"otel_exporter"` // none | stdout | otlp
	OTelEndpoint         string `yaml:"otel_endpoint"`
	ServiceName          string `yaml:"service_name"`
}

func defaults() *Config {
	return &Config{
		HTTPPort:       "8080",
		DatabaseDriver: "postgres",
		DatabaseDSN:    defaultDSN,
		DBLogLevel:     "warn",
		CORSOrigins:    "http://localhost:5173",
		OTelExporter:   "none",
		OTelEndpoint:   "localhost:4317",
		ServiceName:    "cornerstore-backend",
	}
}

// Load reads CONFIG_FILE (optional YAML) first; environment variables win over it.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.DatabaseDriver = strings.ToLower(getEnv("DATABASE_DRIVER", cfg.DatabaseDriver))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.DBLogLevel = strings.ToLower(getEnv("DB_LOG_LEVEL", cfg.DBLogLevel))
	cfg.SeedData = getBool("SEED_DATA", cfg.SeedData)
	cfg.CORSOrigins = getEnv("CORS_ALLOWED_ORIGINS", cfg.CORSOrigins)
	cfg.StrictProductUpdates = getBool("STRICT_PRODUCT_UPDATES", cfg.StrictProductUpdates)
	cfg.OTelExporter = strings.ToLower(getEnv("OTEL_EXPORTER", cfg.OTelExporter))
	cfg.OTelEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTelEndpoint)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.DatabaseDriver == "postgres" && cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		return fmt.Errorf("unsupported DB_LOG_LEVEL %q", c.DBLogLevel)
	}
	switch c.OTelExporter {
	case "none", "stdout", "otlp":
	default:
		return fmt.Errorf("unsupported OTEL_EXPORTER %q", c.OTelExporter)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is empty")
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a boolean, using %t", key, v, def)
		return def
	}
	return b
}

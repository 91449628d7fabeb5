package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// HTTP Server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// FitFlix backend API
const API_BASE_URL = "http://localhost:3000/api"
const LEAD_REQUEST_TIMEOUT_MS = 10000

// Location cookie lifetime
const USER_LOCATION_COOKIE_DAYS = 30

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_CATALOG_RESOURCE = "venues_catalog.json"
const EVENTS_RESOURCE = "events.json"

// Config holds the runtime settings, resolved from the environment over the
// constants above.
type Config struct {
	Env              string
	HTTPAddr         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	APIBaseURL       string
	LeadTimeout      time.Duration
	LocationDays     int
	CatalogPath      string
	EventsPath       string
	ShutdownDeadline time.Duration
}

// Load reads an optional .env file from the project root and then the
// process environment.
func Load() (*Config, error) {
	envFile := filepath.Join(BaseDir(), ".env")
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		log.Printf("[Config] No .env file at %s, using environment only", envFile)
	}

	redisDB, err := intEnv("REDIS_DB", REDIS_DB)
	if err != nil {
		return nil, err
	}
	leadTimeoutMs, err := intEnv("LEAD_TIMEOUT_MS", LEAD_REQUEST_TIMEOUT_MS)
	if err != nil {
		return nil, err
	}
	locationDays, err := intEnv("USER_LOCATION_DAYS", USER_LOCATION_COOKIE_DAYS)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:              stringEnv("APP_ENV", ENV_DEV),
		HTTPAddr:         stringEnv("HTTP_ADDR", HTTP_SERVER_ADDRESS),
		RedisAddr:        stringEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:    stringEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:          redisDB,
		APIBaseURL:       stringEnv("API_BASE_URL", API_BASE_URL),
		LeadTimeout:      time.Duration(leadTimeoutMs) * time.Millisecond,
		LocationDays:     locationDays,
		CatalogPath:      stringEnv("VENUES_CATALOG_PATH", GetResourcePath(VENUES_CATALOG_RESOURCE)),
		EventsPath:       stringEnv("EVENTS_PATH", GetResourcePath(EVENTS_RESOURCE)),
		ShutdownDeadline: HTTP_SHUTDOWN_TIMEOUT_SECONDS * time.Second,
	}, nil
}

func (c *Config) IsProd() bool {
	return c.Env == ENV_PROD
}

func stringEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

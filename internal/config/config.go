package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	Env               string
	LogLevel          string
	StorageDriver     string
	MongoURI          string
	MongoDatabase     string
	DatabaseURI       string
	RedisURL          string
	MenuCacheTTL      time.Duration
	JWTSecret         string
	TokenTTL          time.Duration
	StaffUsername     string
	StaffPassword     string
	UPIID             string
	UPIName           string
	QRBaseURL         string
	PaymentGatewayURL string
	StrictTransitions bool
	SeedMenu          bool
	AllowedOrigins    []string
	AuthRateLimit     float64
	AuthRateBurst     int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":5000"
	defaultEnv             = "development"
	defaultLogLevel        = "info"
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "canteen_db"
	defaultMenuCacheTTL    = 5 * time.Minute
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultStaffUsername   = "admin123"
	defaultStaffPassword   = "1234"
	defaultUPIID           = "canteen@upi"
	defaultUPIName         = "Canteen"
	defaultQRBaseURL       = "http://localhost:3000"
	defaultAuthRateLimit   = 20
	defaultAuthRateBurst   = 40
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	loadDotEnv(".env")
	return load(os.Args[1:], os.LookupEnv)
}

// loadDotEnv populates missing environment variables from the given files.
func loadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		Env:               getString(lookup, "APP_ENV", defaultEnv),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		StorageDriver:     getString(lookup, "STORAGE_DRIVER", DriverMongo),
		MongoURI:          getString(lookup, "MONGO_URI", defaultMongoURI),
		MongoDatabase:     getString(lookup, "MONGO_DATABASE", defaultMongoDatabase),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisURL:          getString(lookup, "REDIS_URL", ""),
		MenuCacheTTL:      getDuration(lookup, "MENU_CACHE_TTL", defaultMenuCacheTTL),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:          getDuration(lookup, "JWT_TTL", defaultTokenTTL),
		StaffUsername:     getString(lookup, "STAFF_USERNAME", defaultStaffUsername),
		StaffPassword:     getString(lookup, "STAFF_PASSWORD", defaultStaffPassword),
		UPIID:             getString(lookup, "UPI_ID", defaultUPIID),
		UPIName:           getString(lookup, "UPI_NAME", defaultUPIName),
		QRBaseURL:         getString(lookup, "QR_BASE_URL", defaultQRBaseURL),
		PaymentGatewayURL: getString(lookup, "PAYMENT_GATEWAY_URL", ""),
		StrictTransitions: getBool(lookup, "STRICT_TRANSITIONS", false),
		SeedMenu:          getBool(lookup, "SEED_MENU", true),
		AllowedOrigins:    getList(lookup, "ALLOWED_ORIGINS", []string{"*"}),
		AuthRateLimit:     getFloat(lookup, "AUTH_RATE_LIMIT", defaultAuthRateLimit),
		AuthRateBurst:     getInt(lookup, "AUTH_RATE_BURST", defaultAuthRateBurst),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("canteen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Storage driver: mongo or postgres")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "MongoDB connection URI")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for menu cache")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "jwt-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.StrictTransitions, "strict-transitions", cfg.StrictTransitions, "Reject out-of-order status changes")
	fs.BoolVar(&cfg.SeedMenu, "seed-menu", cfg.SeedMenu, "Insert sample menu items into an empty catalog")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MenuCacheTTL <= 0 {
		cfg.MenuCacheTTL = defaultMenuCacheTTL
	}

	if cfg.AuthRateLimit <= 0 {
		cfg.AuthRateLimit = defaultAuthRateLimit
	}

	if cfg.AuthRateBurst <= 0 {
		cfg.AuthRateBurst = defaultAuthRateBurst
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("mongo URI must be provided")
		}
	case DriverPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided")
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(lookup envLookup, key string, def []string) []string {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

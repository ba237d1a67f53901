package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"trip-planner-service/internal/platform/db"
)

const (
	ResolverNone = "none"
	ResolverLLM  = "llm"
	ResolverORS  = "ors"
)

// Config holds process settings read from the environment.
type Config struct {
	Port string

	// DatabaseURL selects Postgres when set; otherwise SQLite at DBPath is used.
	DatabaseURL string
	DBPath      string
	SeedPath    string

	Resolver      string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	ORSKey        string

	RedisAddr       string
	GeocodeCacheTTL time.Duration

	CostPerKm float64
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file if present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// LoadDB reads only the database and seed settings. Tools that never
// geocode use it so resolver settings cannot fail them.
func LoadDB() Config {
	return Config{
		DatabaseURL: Get("DATABASE_URL", ""),
		DBPath:      Get("DB_PATH", "data/app.db"),
		SeedPath:    Get("SEED_PATH", "data/seeds/places.json"),
	}
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	cfg := LoadDB()
	cfg.Port = Get("PORT", "8080")
	cfg.OpenAIKey = Get("OPENAI_API_KEY", "")
	cfg.OpenAIModel = Get("OPENAI_MODEL", "gpt-4o-mini")
	cfg.OpenAIBaseURL = Get("OPENAI_BASE_URL", "")
	cfg.ORSKey = Get("ORS_API_KEY", "")
	cfg.RedisAddr = Get("REDIS_ADDR", "")

	cfg.Resolver = strings.ToLower(Get("RESOLVER", defaultResolver(cfg)))
	switch cfg.Resolver {
	case ResolverNone:
	case ResolverLLM:
		if cfg.OpenAIKey == "" {
			return Config{}, errors.New("load config: RESOLVER=llm requires OPENAI_API_KEY")
		}
	case ResolverORS:
		if cfg.ORSKey == "" {
			return Config{}, errors.New("load config: RESOLVER=ors requires ORS_API_KEY")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown RESOLVER %q", cfg.Resolver)
	}

	ttl, err := time.ParseDuration(Get("GEOCODE_CACHE_TTL", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: GEOCODE_CACHE_TTL: %w", err)
	}
	cfg.GeocodeCacheTTL = ttl

	cost, err := strconv.ParseFloat(Get("COST_PER_KM", "15"), 64)
	if err != nil || cost < 0 {
		return Config{}, fmt.Errorf("load config: COST_PER_KM must be a non-negative number, got %q", Get("COST_PER_KM", ""))
	}
	cfg.CostPerKm = cost

	return cfg, nil
}

func defaultResolver(cfg Config) string {
	switch {
	case cfg.OpenAIKey != "":
		return ResolverLLM
	case cfg.ORSKey != "":
		return ResolverORS
	default:
		return ResolverNone
	}
}

// DB returns the database driver and DSN: Postgres when DATABASE_URL is set,
// SQLite at DBPath otherwise.
func (c Config) DB() (driver, dsn string) {
	if c.DatabaseURL != "" {
		return db.DriverPostgres, c.DatabaseURL
	}
	return db.DriverSQLite, c.DBPath
}

package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQL stores, geocoders, caches) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	driver, dsn := cfg.DB()
	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed the catalog on startup for local runs.
	if err := initAndSeed(conn, driver, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	resolver, err := newResolver(cfg, conn, driver)
	if err != nil {
		log.Fatal(err)
	}

	catalog := repositories.NewSQLPlaceCatalog(conn, driver)
	store := repositories.NewSQLPlanStore(conn, driver)

	router := api.NewRouter(api.Dependencies{
		Planner: &services.TripPlanner{
			Catalog:  catalog,
			Resolver: resolver,
			Store:    store,
		},
		Itineraries: &services.Itineraries{
			Store:     store,
			Partition: services.DefaultPartitionOptions(),
		},
		Catalog:   catalog,
		DB:        conn,
		CostPerKm: cfg.CostPerKm,
	})

	// Write timeout leaves room for a cold geocode lookup through the LLM.
	log.Printf("Server listening addr=:%s driver=%s resolver=%s", cfg.Port, driver, cfg.Resolver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newResolver builds the configured geocoder behind a persistent cache:
// Redis when REDIS_ADDR is set, the SQL geocode_cache table otherwise.
func newResolver(cfg config.Config, conn *sql.DB, driver string) (ports.CoordinateResolver, error) {
	var next ports.CoordinateResolver
	switch cfg.Resolver {
	case config.ResolverNone:
		return nil, nil
	case config.ResolverLLM:
		r, err := geocode.NewLLMResolver(
			geocode.WithToken(cfg.OpenAIKey),
			geocode.WithModel(cfg.OpenAIModel),
			geocode.WithBaseURL(cfg.OpenAIBaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("new resolver: %w", err)
		}
		next = r
	case config.ResolverORS:
		r, err := geocode.NewORSResolver(cfg.ORSKey)
		if err != nil {
			return nil, fmt.Errorf("new resolver: %w", err)
		}
		next = r
	default:
		return nil, fmt.Errorf("new resolver: unknown kind %q", cfg.Resolver)
	}

	var store ports.GeocodeCache = cache.NewSQLGeocodeCache(conn, driver)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL)
	}

	return geocode.NewCachedResolver(next, store), nil
}

func initAndSeed(conn *sql.DB, driver, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("seed file not found, skipping path=%s", seedPath)
		return nil
	}

	n, err := repositories.SeedPlaces(conn, driver, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Printf("catalog seeded places=%d path=%s", n, seedPath)

	return nil
}

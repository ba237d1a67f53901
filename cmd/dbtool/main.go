package main

import (
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
)

// dbtool initializes the schema and loads a place catalog seed file
// into the database selected by DATABASE_URL (Postgres) or DB_PATH (SQLite).
func main() {
	config.LoadDotEnv()

	cfg := config.LoadDB()

	seedPath := flag.String("seed", cfg.SeedPath, "catalog seed file (.json, .yaml or .yml)")
	schemaOnly := flag.Bool("schema-only", false, "create tables without seeding")
	flag.Parse()

	driver, dsn := cfg.DB()
	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("Initializing database schema... driver=%s", driver)
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *schemaOnly {
		return
	}

	log.Printf("Seeding catalog... path=%s", *seedPath)
	n, err := repositories.SeedPlaces(conn, driver, *seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. places=%d", n)
}

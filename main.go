package main

import (
	"context"
	"fmt"
	"log"

	"psychoscore/adapters/excel"
	"psychoscore/adapters/postgres"
	"psychoscore/app"
	"psychoscore/internal"
	"psychoscore/internal/config"
	"psychoscore/internal/errors"
	"psychoscore/internal/migration"
	"psychoscore/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// resetDatabase drops all tables and recreates the database schema
func resetDatabase(db *sqlx.DB) error {
	log.Println("Resetting database - dropping all tables...")

	// Drop tables in reverse dependency order
	dropTables := []string{
		"test_results",
		"test_sessions",
		"users",
	}

	for _, table := range dropTables {
		_, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table))
		if err != nil {
			log.Printf("Warning: failed to drop table %s: %v", table, err)
		}
	}
	return nil
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if appConfig.Database.ResetOnStartup {
		if err := resetDatabase(db); err != nil {
			return nil, errors.Wrap(err, "database reset failed")
		}
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	exporter := excel.NewProfileExporter()

	profiles := app.NewProfileService(userRepo, sessionRepo, resultRepo, exporter, logger)

	server := ui.NewServer(appConfig, profiles, userRepo, sessionRepo, logger)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

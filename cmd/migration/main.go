package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/cardbinder/cardbinder/pkg/database"
	"github.com/cardbinder/cardbinder/pkg/database/migration"
)

func main() {
	resetFlag := flag.Bool("reset", false, "Drop all tables before migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	catalogDB, err := database.NewCatalogDB(os.Getenv("CATALOG_DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to catalog database: %v", err)
	}
	usersDB, err := database.NewUsersDB(os.Getenv("USERS_DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to users database: %v", err)
	}
	defer closeDB(catalogDB)
	defer closeDB(usersDB)

	log.Println("Connected to databases")

	if *resetFlag {
		log.Println("Resetting databases...")
		if err := dropAllTables(catalogDB); err != nil {
			log.Fatalf("Failed to reset catalog database: %v", err)
		}
		if err := dropAllTables(usersDB); err != nil {
			log.Fatalf("Failed to reset users database: %v", err)
		}
		log.Println("Databases reset successfully")
	}

	log.Println("Running migrations...")

	if err := migration.RunCatalogMigration(catalogDB); err != nil {
		log.Fatalf("Failed to migrate catalog database: %v", err)
	}
	if err := migration.RunUsersMigration(usersDB); err != nil {
		log.Fatalf("Failed to migrate users database: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func dropAllTables(db *gorm.DB) error {
	db.Exec("SET session_replication_role = 'replica';")

	err := db.Exec(`
		DO $$ DECLARE
		r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error

	db.Exec("SET session_replication_role = 'origin';")

	return err
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := ensurePgcrypto(db); err != nil {
		return err
	}

	// 2. Unique natural keys backing the bulk-import upserts
	if err := ensureImportKeys(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func ensurePgcrypto(db *sql.DB) error {
	_, err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)
	if err != nil {
		log.Printf("Failed to ensure pgcrypto extension: %v", err)
	}
	return err
}

func ensureImportKeys(db *sql.DB) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS programs_name_key ON programs (name)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS benefactors_name_key ON benefactors (name)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS benefits_name_key ON benefits (name)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS people_full_name_key ON people (first_name, last_name)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run migration %q: %v", stmt, err)
			return err
		}
	}
	return nil
}

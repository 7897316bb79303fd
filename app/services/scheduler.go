package services

import (
	"database/sql"
	"log"
	"time"

	"pdao/app/database"
)

// StartSessionCleanup starts the background task that prunes expired
// sessions once an hour.
func StartSessionCleanup(db *sql.DB) {
	go func() {
		log.Println("Session cleanup started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			pruned, err := database.DeleteExpiredSessions(db)
			if err != nil {
				log.Printf("Error pruning expired sessions: %v", err)
				continue
			}
			if pruned > 0 {
				log.Printf("Pruned %d expired sessions", pruned)
			}
		}
	}()
}

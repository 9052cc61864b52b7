package main

import (
	"log"

	"github.com/JohanBenade/schools-pwa-sub000/app/config"
	"github.com/JohanBenade/schools-pwa-sub000/app/database"
)

// Applies pending schema migrations and exits. The server runs migrations on
// startup too; this command exists for deploy pipelines that migrate first.
func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations applied")
}

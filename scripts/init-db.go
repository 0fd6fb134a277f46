package main

import (
	"flag"
	"fmt"
	"log"

	"moving_ops/internal/config"
	"moving_ops/internal/database"
	"moving_ops/internal/migrations"
)

func main() {
	reset := flag.Bool("reset", false, "drop all tables before migrating")
	flag.Parse()

	fmt.Println("Initializing database...")
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if *reset {
		fmt.Println("Dropping existing tables...")
		if err := db.Migrator().DropTable(migrations.Models()...); err != nil {
			log.Printf("Warning: Error dropping tables: %v", err)
		}
	}

	if err := migrations.RunMigrations(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Database initialization completed successfully!")
}

// Command main runs the database seeder for Sahayogi.
package main

import (
	"flag"
	"log"

	"sahayogi/internal/config"
	"sahayogi/internal/database"
	"sahayogi/internal/seed"
)

func main() {
	numElderly := flag.Int("elderly", 10, "Number of elderly users to create")
	numVolunteers := flag.Int("volunteers", 20, "Number of volunteers to create")
	requestsPerElderly := flag.Int("requests", 3, "Number of open requests per elderly user")
	demo := flag.Bool("demo", false, "Seed the small fixed demo dataset instead of a random community")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *demo {
		if err := s.SeedDemo(); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	} else {
		if _, err := s.SeedCommunity(*numElderly, *numVolunteers, *requestsPerElderly); err != nil {
			log.Fatalf("Community seeding failed: %v", err)
		}
	}

	log.Printf("All done. Seeded accounts share the password: %s", seed.DemoPassword)
}

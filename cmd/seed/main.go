// Command main runs the database seeder.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/config"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/database"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/middleware"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", 16, "Number of users to create")
	numPosts := flag.Int("posts", 60, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "Random seed for reproducible data")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg, middleware.Logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, *seedVal)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *numPosts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}

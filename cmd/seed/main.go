// Command seed fills the database with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"tastebuds/internal/config"
	"tastebuds/internal/database"
	"tastebuds/internal/seed"
)

func main() {
	users := flag.Int("users", 20, "Number of users to create")
	clean := flag.Bool("clean", false, "Delete all existing rows before seeding")
	dryRun := flag.Bool("dry-run", false, "Build the data without writing it")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store the demo password unhashed (local only)")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	s, err := seed.NewSeeder(db, seed.SeedOptions{
		Users:      *users,
		Clean:      *clean,
		DryRun:     *dryRun,
		SkipBcrypt: *skipBcrypt,
		RandSeed:   *randSeed,
	})
	if err != nil {
		log.Fatalf("Failed to load seed catalog: %v", err)
	}

	summary, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %+v", *summary)
	log.Printf("All demo users have the password: %s", seed.DefaultPassword)
}

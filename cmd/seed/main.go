// Command main runs the database seeder for GiftLink.
package main

import (
	"flag"
	"log"

	"giftlink/internal/config"
	"giftlink/internal/database"
	"giftlink/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numGifts := flag.Int("gifts", 60, "Number of gifts to create")
	commentsPerGift := flag.Int("comments", 4, "Maximum comments per gift")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d gifts, up to %d comments per gift, clean=%v\n",
		*numUsers, *numGifts, *commentsPerGift, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *numGifts, *commentsPerGift); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: " + seed.DefaultPassword)
}

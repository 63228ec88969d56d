// Command main runs the database seeder for Doorlist.
package main

import (
	"flag"
	"log"

	"doorlist/internal/config"
	"doorlist/internal/database"
	"doorlist/internal/seed"
)

func main() {
	// Parse command line flags
	numEvents := flag.Int("events", 5, "Number of events to create")
	listsPerEvent := flag.Int("lists", 3, "Number of lists per event")
	guestsPerList := flag.Int("guests", 20, "Approximate number of guests per list")
	numUsers := flag.Int("users", 6, "Number of staff users to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Path to a YAML preset file (ignores other flags)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	if *preset != "" {
		log.Printf("Applying preset: %s (ignoring other flags)\n", *preset)
	} else {
		log.Printf("Target: %d events, %d lists each, ~%d guests per list, clean=%v\n",
			*numEvents, *listsPerEvent, *guestsPerList, *shouldClean)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *preset != "" {
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("❌ Preset load failed: %v", err)
		}
		if err := p.Apply(db); err != nil {
			log.Fatalf("❌ Preset seeding failed: %v", err)
		}
	} else {
		err := seed.Seed(db, seed.Options{
			NumEvents:     *numEvents,
			ListsPerEvent: *listsPerEvent,
			GuestsPerList: *guestsPerList,
			NumUsers:      *numUsers,
			ShouldClean:   *shouldClean,
		})
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}

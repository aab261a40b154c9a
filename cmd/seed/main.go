// Command seed runs the database seeder for the campus portal.
package main

import (
	"flag"
	"log"

	"campusconnect/internal/config"
	"campusconnect/internal/database"
	"campusconnect/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numClubs := flag.Int("clubs", 12, "Number of clubs to create")
	numShops := flag.Int("shops", 8, "Number of shops to create")
	numLocations := flag.Int("locations", 15, "Number of campus locations to create")
	centerLat := flag.Float64("lat", 12.9716, "Campus center latitude")
	centerLon := flag.Float64("lon", 77.5946, "Campus center longitude")
	preset := flag.String("preset", "", "Path to a YAML campus preset (overrides generated clubs/shops/locations)")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:     *numUsers,
		NumClubs:     *numClubs,
		NumShops:     *numShops,
		NumLocations: *numLocations,
		CenterLat:    *centerLat,
		CenterLon:    *centerLon,
		PresetPath:   *preset,
		ShouldClean:  *shouldClean,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}

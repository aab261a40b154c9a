package seed

import (
	"fmt"
	"log"

	"campusconnect/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers     int
	NumClubs     int
	NumShops     int
	NumLocations int
	// CenterLat/CenterLon anchor generated campus locations.
	CenterLat float64
	CenterLon float64
	// PresetPath loads fixtures from YAML instead of generating locations,
	// clubs and shops.
	PresetPath  string
	ShouldClean bool
}

// DefaultOptions returns a small demo dataset anchored on a plausible campus.
func DefaultOptions() Options {
	return Options{
		NumUsers:     10,
		NumClubs:     12,
		NumShops:     8,
		NumLocations: 15,
		CenterLat:    12.9716,
		CenterLon:    77.5946,
	}
}

// Run seeds the database. Always creates the demo admin account.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	if err := ensureAdmin(db); err != nil {
		return err
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	if opts.PresetPath != "" {
		preset, err := LoadPreset(opts.PresetPath)
		if err != nil {
			return err
		}
		if err := preset.Apply(db); err != nil {
			return err
		}
		log.Printf("seed: applied preset %s", opts.PresetPath)
		return nil
	}

	pick := func(i int) *models.User {
		if len(users) == 0 {
			return nil
		}
		return users[i%len(users)]
	}

	for i := 0; i < opts.NumClubs; i++ {
		if _, err := f.CreateClub(pick(i)); err != nil {
			return err
		}
	}
	for i := 0; i < opts.NumShops; i++ {
		if _, err := f.CreateShop(pick(i)); err != nil {
			return err
		}
	}
	for i := 0; i < opts.NumLocations; i++ {
		if _, err := f.CreateLocation(opts.CenterLat, opts.CenterLon); err != nil {
			return err
		}
	}

	log.Printf("seed: created %d users, %d clubs, %d shops, %d locations",
		opts.NumUsers, opts.NumClubs, opts.NumShops, opts.NumLocations)
	return nil
}

// ensureAdmin makes sure the demo admin account exists.
func ensureAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("AdminPassword1!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username: "admin",
		Email:    "admin@campus.local",
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func clean(db *gorm.DB) error {
	// Order matters for FK references.
	for _, table := range []string{"pending_approvals", "clubs", "shops", "campus_locations", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clean %s: %w", table, err)
		}
	}
	return nil
}

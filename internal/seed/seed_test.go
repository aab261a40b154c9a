package seed

import (
	"os"
	"path/filepath"
	"testing"

	"campusconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Shop{},
		&models.CampusLocation{},
		&models.PendingApproval{},
	))
	return db
}

func TestRun_GeneratesRequestedCounts(t *testing.T) {
	db := setupSeedDB(t)

	opts := Options{
		NumUsers:     3,
		NumClubs:     5,
		NumShops:     4,
		NumLocations: 6,
		CenterLat:    12.9716,
		CenterLon:    77.5946,
	}
	require.NoError(t, Run(db, opts))

	var users, clubs, shops, locations int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Club{}).Count(&clubs)
	db.Model(&models.Shop{}).Count(&shops)
	db.Model(&models.CampusLocation{}).Count(&locations)

	assert.EqualValues(t, 4, users, "requested users plus the admin account")
	assert.EqualValues(t, 5, clubs)
	assert.EqualValues(t, 4, shops)
	assert.EqualValues(t, 6, locations)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsAdmin)

	// Locations stay near the campus center.
	var locs []models.CampusLocation
	require.NoError(t, db.Find(&locs).Error)
	for _, l := range locs {
		assert.InDelta(t, opts.CenterLat, l.Latitude, 0.01)
		assert.InDelta(t, opts.CenterLon, l.Longitude, 0.01)
	}
}

func TestRun_AppliesPreset(t *testing.T) {
	db := setupSeedDB(t)

	preset := `
campus:
  name: Demo Campus
  latitude: 12.9716
  longitude: 77.5946
locations:
  - name: Library
    category: academic
    latitude: 12.9720
    longitude: 77.5946
    floor_info: Floor 2
clubs:
  - name: Robotics Club
    category: technical
    approved: true
  - name: Film Club
    category: cultural
    approved: false
shops:
  - name: Campus Cafe
    category: food
    opening_hours: 8am - 8pm
    approved: true
`
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(preset), 0o600))

	require.NoError(t, Run(db, Options{PresetPath: path}))

	var approved models.Club
	require.NoError(t, db.Where("name = ?", "Robotics Club").First(&approved).Error)
	assert.Equal(t, models.ApprovalStatusApproved, approved.Status)

	var pending models.Club
	require.NoError(t, db.Where("name = ?", "Film Club").First(&pending).Error)
	assert.Equal(t, models.ApprovalStatusPending, pending.Status)

	var loc models.CampusLocation
	require.NoError(t, db.Where("name = ?", "Library").First(&loc).Error)
	assert.Equal(t, "Floor 2", loc.FloorInfo)
}

func TestRun_CleanRemovesExistingRows(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, db.Create(&models.Club{Name: "Old Club"}).Error)

	require.NoError(t, Run(db, Options{NumClubs: 1, ShouldClean: true, CenterLat: 12.97, CenterLon: 77.59}))

	var count int64
	db.Model(&models.Club{}).Where("name = ?", "Old Club").Count(&count)
	assert.Zero(t, count)
}

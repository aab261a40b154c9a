// Package seed provides helpers to create demo data for the portal database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"campusconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var clubCategories = []string{"technical", "cultural", "sports", "science", "social", "games"}

var shopCategories = []string{"food", "stationery", "printing", "grocery", "services"}

var locationCategories = []string{"academic", "food", "landmark", "sports", "hostel", "admin"}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a bcrypt-hashed password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!demo"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	for _, o := range overrides {
		o(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreateClub persists a club. Roughly two thirds of generated clubs are
// approved so the public directory has content out of the box.
func (f *Factory) CreateClub(submitter *models.User, overrides ...func(*models.Club)) (*models.Club, error) {
	status := models.ApprovalStatusApproved
	if f.rng.Intn(3) == 0 {
		status = models.ApprovalStatusPending
	}

	club := &models.Club{
		Name:               gofakeit.ProductName() + " Club",
		Description:        gofakeit.Paragraph(1, 2, 8, " "),
		Category:           clubCategories[f.rng.Intn(len(clubCategories))],
		FacultyCoordinator: gofakeit.Name(),
		FacultyEmail:       gofakeit.Email(),
		MeetingSchedule:    fmt.Sprintf("%s %d pm", gofakeit.WeekDay(), 4+f.rng.Intn(4)),
		ContactInfo:        gofakeit.Phone(),
		Status:             status,
	}
	if submitter != nil {
		club.SubmittedBy = &submitter.ID
	}
	for _, o := range overrides {
		o(club)
	}

	if err := f.db.Create(club).Error; err != nil {
		return nil, fmt.Errorf("seed club: %w", err)
	}
	return club, nil
}

// CreateShop persists a shop.
func (f *Factory) CreateShop(submitter *models.User, overrides ...func(*models.Shop)) (*models.Shop, error) {
	status := models.ApprovalStatusApproved
	if f.rng.Intn(3) == 0 {
		status = models.ApprovalStatusPending
	}

	shop := &models.Shop{
		Name:         gofakeit.Company(),
		Description:  gofakeit.Paragraph(1, 2, 8, " "),
		Category:     shopCategories[f.rng.Intn(len(shopCategories))],
		Location:     fmt.Sprintf("Block %c, floor %d", 'A'+rune(f.rng.Intn(6)), f.rng.Intn(4)),
		ContactInfo:  gofakeit.Phone(),
		OpeningHours: "9am - 6pm",
		Status:       status,
	}
	if submitter != nil {
		shop.SubmittedBy = &submitter.ID
	}
	for _, o := range overrides {
		o(shop)
	}

	if err := f.db.Create(shop).Error; err != nil {
		return nil, fmt.Errorf("seed shop: %w", err)
	}
	return shop, nil
}

// CreateLocation persists a campus location scattered around the given
// center, within roughly 400 m.
func (f *Factory) CreateLocation(centerLat, centerLon float64, overrides ...func(*models.CampusLocation)) (*models.CampusLocation, error) {
	loc := &models.CampusLocation{
		Name:      gofakeit.Street(),
		Category:  locationCategories[f.rng.Intn(len(locationCategories))],
		Latitude:  centerLat + (f.rng.Float64()-0.5)*0.007,
		Longitude: centerLon + (f.rng.Float64()-0.5)*0.007,
		FloorInfo: fmt.Sprintf("Floor %d", f.rng.Intn(5)),
	}
	for _, o := range overrides {
		o(loc)
	}

	if err := f.db.Create(loc).Error; err != nil {
		return nil, fmt.Errorf("seed location: %w", err)
	}
	return loc, nil
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusconnect/internal/config"
	"campusconnect/internal/mailer"
	"campusconnect/internal/models"
	"campusconnect/internal/ratelimit"
	"campusconnect/internal/repository"
	"campusconnect/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Shop{},
		&models.CampusLocation{},
		&models.PendingApproval{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer wires a Server against in-memory sqlite, a recording mailer
// and a memory rate limiter.
func newTestServer(t *testing.T) (*Server, *mailer.Mock) {
	t.Helper()
	db := setupHandlerTestDB(t)
	mail := mailer.NewMock()

	cfg := &config.Config{
		JWTSecret:     "test-secret-test-secret-test-secret",
		PortalBaseURL: "http://localhost:5173",
		Env:           "test",
	}

	approvalRepo := repository.NewApprovalRepository(db)
	s := &Server{
		config:          cfg,
		db:              db,
		decisionLimiter: ratelimit.NewMemoryLimiter(ratelimit.DefaultLimit, 60*time.Second),
		userRepo:        repository.NewUserRepository(db),
		clubRepo:        repository.NewClubRepository(db),
		shopRepo:        repository.NewShopRepository(db),
		locationRepo:    repository.NewLocationRepository(db),
		approvalRepo:    approvalRepo,
	}
	s.approvalService = service.NewApprovalService(approvalRepo, mail, cfg.PortalBaseURL)
	return s, mail
}

func newGetRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

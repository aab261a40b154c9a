package repository

import (
	"context"
	"errors"

	"campusconnect/internal/cache"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"

	"gorm.io/gorm"
)

// LocationRepository defines persistence operations for campus locations.
type LocationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.CampusLocation, error)
	Create(ctx context.Context, loc *models.CampusLocation) error
	Update(ctx context.Context, loc *models.CampusLocation) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]models.CampusLocation, error)
}

type locationRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewLocationRepository returns a new LocationRepository implementation.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db, log: observability.NewRepoLogger("campus_locations")}
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.CampusLocation, error) {
	var loc models.CampusLocation
	key := cache.LocationKey(id)

	err := cache.Aside(ctx, key, &loc, cache.LocationTTL, func() error {
		defer observability.TrackQuery("get", "campus_locations")()
		if err := r.db.WithContext(ctx).First(&loc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Location", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepository) Create(ctx context.Context, loc *models.CampusLocation) error {
	defer observability.TrackQuery("create", "campus_locations")()
	if err := r.db.WithContext(ctx).Create(loc).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.LocationListKey)
	return nil
}

func (r *locationRepository) Update(ctx context.Context, loc *models.CampusLocation) error {
	defer observability.TrackQuery("update", "campus_locations")()
	if err := r.db.WithContext(ctx).Save(loc).Error; err != nil {
		r.log.LogError(ctx, err, "update")
		return models.NewInternalError(err)
	}
	cache.InvalidateLocation(ctx, loc.ID)
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "campus_locations")()
	if err := r.db.WithContext(ctx).Delete(&models.CampusLocation{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	cache.InvalidateLocation(ctx, id)
	return nil
}

// ListAll returns every campus location. The set is small and read often by
// the map and AR views, so the whole list is cached as one entry.
func (r *locationRepository) ListAll(ctx context.Context) ([]models.CampusLocation, error) {
	var locs []models.CampusLocation

	err := cache.Aside(ctx, cache.LocationListKey, &locs, cache.LocationTTL, func() error {
		defer observability.TrackQuery("list", "campus_locations")()
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&locs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return locs, nil
}

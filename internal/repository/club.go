package repository

import (
	"context"
	"errors"

	"campusconnect/internal/cache"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"

	"gorm.io/gorm"
)

// ClubRepository defines persistence operations for clubs.
type ClubRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	Create(ctx context.Context, club *models.Club) error
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status models.ApprovalStatus, category string, limit, offset int) ([]models.Club, error)
}

type clubRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewClubRepository returns a new ClubRepository implementation.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db, log: observability.NewRepoLogger("clubs")}
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	key := cache.ClubKey(id)

	err := cache.Aside(ctx, key, &club, cache.ClubTTL, func() error {
		defer observability.TrackQuery("get", "clubs")()
		if err := r.db.WithContext(ctx).First(&club, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Club", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	defer observability.TrackQuery("create", "clubs")()
	if err := r.db.WithContext(ctx).Create(club).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Club already exists")
		}
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	return nil
}

func (r *clubRepository) Update(ctx context.Context, club *models.Club) error {
	defer observability.TrackQuery("update", "clubs")()
	if err := r.db.WithContext(ctx).Save(club).Error; err != nil {
		r.log.LogError(ctx, err, "update")
		return models.NewInternalError(err)
	}
	cache.InvalidateClub(ctx, club.ID)
	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "clubs")()
	if err := r.db.WithContext(ctx).Delete(&models.Club{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	cache.InvalidateClub(ctx, id)
	return nil
}

func (r *clubRepository) List(ctx context.Context, status models.ApprovalStatus, category string, limit, offset int) ([]models.Club, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	defer observability.TrackQuery("list", "clubs")()
	q := r.db.WithContext(ctx).Model(&models.Club{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var clubs []models.Club
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&clubs).Error; err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}
	return clubs, nil
}

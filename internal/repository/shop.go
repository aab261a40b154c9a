package repository

import (
	"context"
	"errors"

	"campusconnect/internal/cache"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"

	"gorm.io/gorm"
)

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Shop, error)
	Create(ctx context.Context, shop *models.Shop) error
	Update(ctx context.Context, shop *models.Shop) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status models.ApprovalStatus, category string, limit, offset int) ([]models.Shop, error)
}

type shopRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewShopRepository returns a new ShopRepository implementation.
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db, log: observability.NewRepoLogger("shops")}
}

func (r *shopRepository) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	var shop models.Shop
	key := cache.ShopKey(id)

	err := cache.Aside(ctx, key, &shop, cache.ShopTTL, func() error {
		defer observability.TrackQuery("get", "shops")()
		if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Shop", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) Create(ctx context.Context, shop *models.Shop) error {
	defer observability.TrackQuery("create", "shops")()
	if err := r.db.WithContext(ctx).Create(shop).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Shop already exists")
		}
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	return nil
}

func (r *shopRepository) Update(ctx context.Context, shop *models.Shop) error {
	defer observability.TrackQuery("update", "shops")()
	if err := r.db.WithContext(ctx).Save(shop).Error; err != nil {
		r.log.LogError(ctx, err, "update")
		return models.NewInternalError(err)
	}
	cache.InvalidateShop(ctx, shop.ID)
	return nil
}

func (r *shopRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "shops")()
	if err := r.db.WithContext(ctx).Delete(&models.Shop{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	cache.InvalidateShop(ctx, id)
	return nil
}

func (r *shopRepository) List(ctx context.Context, status models.ApprovalStatus, category string, limit, offset int) ([]models.Shop, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	defer observability.TrackQuery("list", "shops")()
	q := r.db.WithContext(ctx).Model(&models.Shop{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var shops []models.Shop
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&shops).Error; err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}
	return shops, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"campusconnect/internal/cache"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"

	"gorm.io/gorm"
)

// ApprovalRepository defines persistence operations for the faculty approval
// workflow. Writes that touch both the approval record and its target entity
// happen inside a single transaction.
type ApprovalRepository interface {
	CreateWithEntityStamp(ctx context.Context, approval *models.PendingApproval) error
	FindDecidable(ctx context.Context, token string) (*models.PendingApproval, error)
	Decide(ctx context.Context, approval *models.PendingApproval, status models.ApprovalStatus) error
	List(ctx context.Context, status models.ApprovalStatus, limit, offset int) ([]models.PendingApproval, error)
	FindDisagreements(ctx context.Context) ([]models.PendingApproval, error)
	RepairEntity(ctx context.Context, approval *models.PendingApproval) error
}

type approvalRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewApprovalRepository returns a new ApprovalRepository implementation.
func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db: db, log: observability.NewRepoLogger("pending_approvals")}
}

func entityModel(itemType models.ItemType) (interface{}, error) {
	switch itemType {
	case models.ItemTypeClub:
		return &models.Club{}, nil
	case models.ItemTypeShop:
		return &models.Shop{}, nil
	default:
		return nil, models.NewValidationError("Invalid request")
	}
}

// CreateWithEntityStamp inserts the approval record and stamps the target
// club or shop with the same token and submitter, atomically. A missing
// target aborts the transaction with a NotFound error.
func (r *approvalRepository) CreateWithEntityStamp(ctx context.Context, approval *models.PendingApproval) error {
	entity, err := entityModel(approval.ItemType)
	if err != nil {
		return err
	}

	defer observability.TrackQuery("create_with_stamp", "pending_approvals")()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(approval).Error; err != nil {
			return err
		}
		res := tx.Model(entity).
			Where("id = ?", approval.ItemID).
			Updates(map[string]interface{}{
				"approval_token": approval.ApprovalToken,
				"status":         models.ApprovalStatusPending,
				"submitted_by":   approval.SubmittedBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError(string(approval.ItemType), approval.ItemID)
		}
		return nil
	})

	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		r.log.LogError(ctx, err, "create_with_stamp")
		return models.NewInternalError(err)
	}

	r.invalidateEntity(ctx, approval)
	return nil
}

// FindDecidable looks up a pending approval by token, ignoring rows older
// than the approval window. Unknown, already-decided and expired tokens all
// come back as the same error.
func (r *approvalRepository) FindDecidable(ctx context.Context, token string) (*models.PendingApproval, error) {
	cutoff := time.Now().Add(-models.ApprovalWindow)

	defer observability.TrackQuery("find_decidable", "pending_approvals")()
	var approval models.PendingApproval
	err := r.db.WithContext(ctx).
		Where("approval_token = ? AND status = ? AND created_at > ?",
			token, models.ApprovalStatusPending, cutoff).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewTokenNotFoundError()
		}
		r.log.LogError(ctx, err, "find_decidable")
		return nil, models.NewInternalError(err)
	}
	return &approval, nil
}

// Decide flips the approval record and its target entity to the given status
// in one transaction. The approval row is kept forever as an audit trail.
func (r *approvalRepository) Decide(ctx context.Context, approval *models.PendingApproval, status models.ApprovalStatus) error {
	entity, err := entityModel(approval.ItemType)
	if err != nil {
		return err
	}

	defer observability.TrackQuery("decide", "pending_approvals")()
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PendingApproval{}).
			Where("id = ? AND status = ?", approval.ID, models.ApprovalStatusPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a race against a concurrent decision.
			return models.NewTokenNotFoundError()
		}
		return tx.Model(entity).
			Where("id = ?", approval.ItemID).
			Update("status", status).Error
	})

	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		r.log.LogError(ctx, err, "decide")
		return models.NewInternalError(err)
	}

	approval.Status = status
	r.invalidateEntity(ctx, approval)
	return nil
}

func (r *approvalRepository) List(ctx context.Context, status models.ApprovalStatus, limit, offset int) ([]models.PendingApproval, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	defer observability.TrackQuery("list", "pending_approvals")()
	q := r.db.WithContext(ctx).Model(&models.PendingApproval{}).Preload("Submitter")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var approvals []models.PendingApproval
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&approvals).Error; err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}
	return approvals, nil
}

// FindDisagreements returns decided approval records whose target entity
// still carries a different status. The join matches on the entity's stamped
// approval_token, not just the item id: approval rows are kept forever, and a
// re-submitted entity carries a fresh token, so older decided rows for the
// same entity must not count as disagreements.
func (r *approvalRepository) FindDisagreements(ctx context.Context) ([]models.PendingApproval, error) {
	defer observability.TrackQuery("find_disagreements", "pending_approvals")()

	var out []models.PendingApproval

	var clubSide []models.PendingApproval
	err := r.db.WithContext(ctx).
		Joins("JOIN clubs ON clubs.id = pending_approvals.item_id AND clubs.approval_token = pending_approvals.approval_token").
		Where("pending_approvals.item_type = ?", models.ItemTypeClub).
		Where("pending_approvals.status <> ?", models.ApprovalStatusPending).
		Where("clubs.status <> pending_approvals.status").
		Find(&clubSide).Error
	if err != nil {
		r.log.LogError(ctx, err, "find_disagreements")
		return nil, models.NewInternalError(err)
	}
	out = append(out, clubSide...)

	var shopSide []models.PendingApproval
	err = r.db.WithContext(ctx).
		Joins("JOIN shops ON shops.id = pending_approvals.item_id AND shops.approval_token = pending_approvals.approval_token").
		Where("pending_approvals.item_type = ?", models.ItemTypeShop).
		Where("pending_approvals.status <> ?", models.ApprovalStatusPending).
		Where("shops.status <> pending_approvals.status").
		Find(&shopSide).Error
	if err != nil {
		r.log.LogError(ctx, err, "find_disagreements")
		return nil, models.NewInternalError(err)
	}
	out = append(out, shopSide...)

	return out, nil
}

// RepairEntity forces the target entity's status back to the decided value.
// The token guard makes the write a no-op when the entity was re-submitted
// between the disagreement scan and the repair.
func (r *approvalRepository) RepairEntity(ctx context.Context, approval *models.PendingApproval) error {
	entity, err := entityModel(approval.ItemType)
	if err != nil {
		return err
	}

	defer observability.TrackQuery("repair_entity", "pending_approvals")()
	if err := r.db.WithContext(ctx).Model(entity).
		Where("id = ? AND approval_token = ?", approval.ItemID, approval.ApprovalToken).
		Update("status", approval.Status).Error; err != nil {
		r.log.LogError(ctx, err, "repair_entity")
		return models.NewInternalError(err)
	}

	r.invalidateEntity(ctx, approval)
	return nil
}

func (r *approvalRepository) invalidateEntity(ctx context.Context, approval *models.PendingApproval) {
	switch approval.ItemType {
	case models.ItemTypeClub:
		cache.InvalidateClub(ctx, approval.ItemID)
	case models.ItemTypeShop:
		cache.InvalidateShop(ctx, approval.ItemID)
	}
}

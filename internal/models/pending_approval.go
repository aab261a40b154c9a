package models

import "time"

// ApprovalStatus defines lifecycle states shared by approval records and the
// entities they gate.
type ApprovalStatus string

const (
	// ApprovalStatusPending indicates the item is awaiting a faculty decision.
	ApprovalStatusPending ApprovalStatus = "pending"
	// ApprovalStatusApproved indicates the item was accepted.
	ApprovalStatusApproved ApprovalStatus = "approved"
	// ApprovalStatusRejected indicates the item was declined.
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ItemType identifies which entity table an approval record refers to.
type ItemType string

const (
	ItemTypeClub ItemType = "club"
	ItemTypeShop ItemType = "shop"
)

// ApprovalWindow is how long a pending record stays decidable. Older pending
// rows are treated as not found, though they are never deleted.
const ApprovalWindow = 30 * 24 * time.Hour

// PendingApproval is a token-bearing record created when a club or shop is
// submitted for faculty review. It is mutated exactly once, by the decision
// processor, and kept forever as an audit trail.
type PendingApproval struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ItemType      ItemType       `gorm:"type:varchar(10);not null;index" json:"item_type"`
	ItemID        uint           `gorm:"not null;index" json:"item_id"`
	SubmittedBy   *uint          `gorm:"index" json:"submitted_by"`
	Submitter     *User          `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	FacultyEmail  string         `gorm:"size:255;not null;default:'pending'" json:"faculty_email"`
	ApprovalToken string         `gorm:"size:64;not null;uniqueIndex" json:"-"`
	Status        ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (PendingApproval) TableName() string {
	return "pending_approvals"
}

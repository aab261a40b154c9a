package models

import "time"

// Shop is a campus shop or eatery in the directory. Like clubs, shops are
// gated behind faculty approval before they appear publicly.
type Shop struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:200;not null" json:"name"`
	Description   string         `gorm:"size:2000" json:"description"`
	Category      string         `gorm:"size:100;index" json:"category"`
	Location      string         `gorm:"size:200" json:"location"`
	ContactInfo   string         `gorm:"size:500" json:"contact_info"`
	OpeningHours  string         `gorm:"size:200" json:"opening_hours"`
	ImageURL      string         `gorm:"size:500" json:"image_url"`
	Status        ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ApprovalToken string         `gorm:"size:64;index" json:"-"`
	SubmittedBy   *uint          `gorm:"index" json:"submitted_by"`
	Submitter     *User          `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Shop) TableName() string {
	return "shops"
}

package models

import "time"

// Club is a student club listed in the campus directory. New clubs start as
// pending and become visible once a faculty coordinator approves them.
type Club struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"size:200;not null" json:"name"`
	Description        string         `gorm:"size:2000" json:"description"`
	Category           string         `gorm:"size:100;index" json:"category"`
	FacultyCoordinator string         `gorm:"size:200" json:"faculty_coordinator"`
	FacultyEmail       string         `gorm:"size:255" json:"faculty_email"`
	MeetingSchedule    string         `gorm:"size:200" json:"meeting_schedule"`
	ContactInfo        string         `gorm:"size:500" json:"contact_info"`
	ImageURL           string         `gorm:"size:500" json:"image_url"`
	Status             ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ApprovalToken      string         `gorm:"size:64;index" json:"-"`
	SubmittedBy        *uint          `gorm:"index" json:"submitted_by"`
	Submitter          *User          `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Club) TableName() string {
	return "clubs"
}

package models

import "time"

// CampusLocation is a point of interest on the campus map, consumed by the
// map and AR views. Coordinates are WGS84 degrees.
type CampusLocation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Latitude    float64   `gorm:"type:decimal(9,6);not null" json:"latitude"`
	Longitude   float64   `gorm:"type:decimal(9,6);not null" json:"longitude"`
	Description string    `gorm:"size:2000" json:"description"`
	FloorInfo   string    `gorm:"size:200" json:"floor_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CampusLocation) TableName() string {
	return "campus_locations"
}

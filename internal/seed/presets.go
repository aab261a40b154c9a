package seed

import (
	"fmt"
	"os"

	"campusconnect/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset is a YAML-described set of campus fixtures, used to load a real
// campus map instead of generated noise.
type Preset struct {
	Campus struct {
		Name      string  `yaml:"name"`
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
	} `yaml:"campus"`
	Locations []struct {
		Name        string  `yaml:"name"`
		Category    string  `yaml:"category"`
		Latitude    float64 `yaml:"latitude"`
		Longitude   float64 `yaml:"longitude"`
		Description string  `yaml:"description"`
		FloorInfo   string  `yaml:"floor_info"`
	} `yaml:"locations"`
	Clubs []struct {
		Name               string `yaml:"name"`
		Category           string `yaml:"category"`
		Description        string `yaml:"description"`
		FacultyCoordinator string `yaml:"faculty_coordinator"`
		FacultyEmail       string `yaml:"faculty_email"`
		Approved           bool   `yaml:"approved"`
	} `yaml:"clubs"`
	Shops []struct {
		Name         string `yaml:"name"`
		Category     string `yaml:"category"`
		Location     string `yaml:"location"`
		OpeningHours string `yaml:"opening_hours"`
		Approved     bool   `yaml:"approved"`
	} `yaml:"shops"`
}

// LoadPreset parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// Apply persists the preset's fixtures.
func (p *Preset) Apply(db *gorm.DB) error {
	for _, l := range p.Locations {
		loc := models.CampusLocation{
			Name:        l.Name,
			Category:    l.Category,
			Latitude:    l.Latitude,
			Longitude:   l.Longitude,
			Description: l.Description,
			FloorInfo:   l.FloorInfo,
		}
		if err := db.Create(&loc).Error; err != nil {
			return fmt.Errorf("preset location %q: %w", l.Name, err)
		}
	}

	for _, c := range p.Clubs {
		status := models.ApprovalStatusPending
		if c.Approved {
			status = models.ApprovalStatusApproved
		}
		club := models.Club{
			Name:               c.Name,
			Category:           c.Category,
			Description:        c.Description,
			FacultyCoordinator: c.FacultyCoordinator,
			FacultyEmail:       c.FacultyEmail,
			Status:             status,
		}
		if err := db.Create(&club).Error; err != nil {
			return fmt.Errorf("preset club %q: %w", c.Name, err)
		}
	}

	for _, sh := range p.Shops {
		status := models.ApprovalStatusPending
		if sh.Approved {
			status = models.ApprovalStatusApproved
		}
		shop := models.Shop{
			Name:         sh.Name,
			Category:     sh.Category,
			Location:     sh.Location,
			OpeningHours: sh.OpeningHours,
			Status:       status,
		}
		if err := db.Create(&shop).Error; err != nil {
			return fmt.Errorf("preset shop %q: %w", sh.Name, err)
		}
	}

	return nil
}

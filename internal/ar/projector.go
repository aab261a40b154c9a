// Package ar projects campus locations into screen space for the augmented
// reality overlay. The projection is stateless and recomputed for every
// heading or position frame the client reports; no smoothing is applied, so
// sensor jitter passes straight through.
package ar

import (
	"campusconnect/internal/geo"
	"campusconnect/internal/models"
)

const (
	// FieldOfViewHalfAngle is the horizontal half-angle in degrees within
	// which a target is rendered. The boundary is inclusive.
	FieldOfViewHalfAngle = 60.0
	// DistanceReference caps the distance used for vertical placement and
	// scale cueing, in meters.
	DistanceReference = 500.0
	// MinScale floors the distance-based marker scale.
	MinScale = 0.6
)

// Viewer is the live device position and compass heading (degrees, 0 = north,
// clockwise).
type Viewer struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Heading   float64 `json:"heading"`
}

// Marker is one projected location. X and Y are percentages of the viewport;
// nearer targets render lower on screen and larger.
type Marker struct {
	LocationID    uint    `json:"location_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	FloorInfo     string  `json:"floor_info,omitempty"`
	Distance      float64 `json:"distance"`
	Bearing       float64 `json:"bearing"`
	RelativeAngle float64 `json:"relative_angle"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Scale         float64 `json:"scale"`
}

// RelativeAngle normalizes bearing minus heading into [-180, 180] with a
// single ±360 correction.
func RelativeAngle(bearing, heading float64) float64 {
	rel := bearing - heading
	if rel > 180 {
		rel -= 360
	} else if rel < -180 {
		rel += 360
	}
	return rel
}

// Visible reports whether a relative angle falls inside the field of view.
// The 60 degree boundary itself is visible.
func Visible(relativeAngle float64) bool {
	return relativeAngle >= -FieldOfViewHalfAngle && relativeAngle <= FieldOfViewHalfAngle
}

// Project returns screen markers for every target within the field of view.
// Targets outside it are omitted for this frame.
func Project(v Viewer, targets []models.CampusLocation) []Marker {
	markers := make([]Marker, 0, len(targets))
	for _, loc := range targets {
		bearing := geo.Bearing(v.Latitude, v.Longitude, loc.Latitude, loc.Longitude)
		distance := geo.Distance(v.Latitude, v.Longitude, loc.Latitude, loc.Longitude)

		rel := RelativeAngle(bearing, v.Heading)
		if !Visible(rel) {
			continue
		}

		y := 30 + (distance/DistanceReference)*40
		if y < 20 {
			y = 20
		} else if y > 80 {
			y = 80
		}

		scale := 1 - distance/DistanceReference
		if scale < MinScale {
			scale = MinScale
		}

		markers = append(markers, Marker{
			LocationID:    loc.ID,
			Name:          loc.Name,
			Category:      loc.Category,
			FloorInfo:     loc.FloorInfo,
			Distance:      distance,
			Bearing:       bearing,
			RelativeAngle: rel,
			X:             50 + (rel/FieldOfViewHalfAngle)*40,
			Y:             y,
			Scale:         scale,
		})
	}
	return markers
}

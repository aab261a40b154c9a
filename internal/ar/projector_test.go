package ar

import (
	"math"
	"testing"

	"campusconnect/internal/models"
)

// locationAtBearing places a target roughly dist meters from the viewer at
// the given compass bearing.
func locationAtBearing(id uint, viewerLat, viewerLon, bearingDeg, dist float64) models.CampusLocation {
	rad := bearingDeg * math.Pi / 180
	dLat := (dist * math.Cos(rad)) / 111195
	dLon := (dist * math.Sin(rad)) / (111195 * math.Cos(viewerLat*math.Pi/180))
	return models.CampusLocation{
		ID:        id,
		Name:      "target",
		Latitude:  viewerLat + dLat,
		Longitude: viewerLon + dLon,
	}
}

func TestRelativeAngle_Range(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bearing, heading, want float64
	}{
		{0, 0, 0},
		{90, 0, 90},
		{0, 90, -90},
		{350, 10, -20},
		{10, 350, 20},
		{180, 0, 180},
		{0, 180, -180},
	}
	for _, tc := range cases {
		got := RelativeAngle(tc.bearing, tc.heading)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RelativeAngle(%v, %v) = %v, want %v", tc.bearing, tc.heading, got, tc.want)
		}
		if got < -180 || got > 180 {
			t.Errorf("RelativeAngle(%v, %v) = %v out of [-180, 180]", tc.bearing, tc.heading, got)
		}
	}
}

func TestVisible_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	if !Visible(60) {
		t.Error("relative angle of exactly 60 must be visible")
	}
	if !Visible(-60) {
		t.Error("relative angle of exactly -60 must be visible")
	}
	if Visible(60.0001) {
		t.Error("relative angle of 60.0001 must not be visible")
	}
	if Visible(-60.0001) {
		t.Error("relative angle of -60.0001 must not be visible")
	}
	if !Visible(0) {
		t.Error("relative angle of 0 must be visible")
	}
}

func TestProject_OmitsTargetsOutsideFOV(t *testing.T) {
	t.Parallel()

	v := Viewer{Latitude: 12.9716, Longitude: 77.5946, Heading: 0}

	// Comfortably inside the cone: visible.
	inside := locationAtBearing(1, v.Latitude, v.Longitude, 45, 100)
	if got := Project(v, []models.CampusLocation{inside}); len(got) != 1 {
		t.Fatalf("target at 45 degrees should be visible, got %d markers", len(got))
	}

	// Comfortably outside: omitted.
	outside := locationAtBearing(2, v.Latitude, v.Longitude, 75, 100)
	if got := Project(v, []models.CampusLocation{outside}); len(got) != 0 {
		t.Fatalf("target at 75 degrees should be omitted, got %d markers", len(got))
	}

	// Behind the viewer: omitted.
	behind := locationAtBearing(3, v.Latitude, v.Longitude, 180, 100)
	if got := Project(v, []models.CampusLocation{behind}); len(got) != 0 {
		t.Fatalf("target behind viewer should be omitted, got %d markers", len(got))
	}
}

func TestProject_ScreenPlacement(t *testing.T) {
	t.Parallel()

	v := Viewer{Latitude: 12.9716, Longitude: 77.5946, Heading: 0}

	// Dead ahead at 250 m: centered horizontally, halfway down the band.
	ahead := locationAtBearing(1, v.Latitude, v.Longitude, 0, 250)
	markers := Project(v, []models.CampusLocation{ahead})
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	m := markers[0]
	if math.Abs(m.X-50) > 0.5 {
		t.Errorf("X = %v, want ~50 for a target dead ahead", m.X)
	}
	if math.Abs(m.Y-50) > 1 {
		t.Errorf("Y = %v, want ~50 for a 250m target", m.Y)
	}
	if math.Abs(m.Scale-0.5) > 0.01 {
		t.Errorf("Scale = %v, want ~0.5 for a 250m target", m.Scale)
	}
}

func TestProject_ClampsAndFloors(t *testing.T) {
	t.Parallel()

	v := Viewer{Latitude: 12.9716, Longitude: 77.5946, Heading: 0}

	// Very distant target: Y clamps at 80, scale floors at 0.6.
	far := locationAtBearing(1, v.Latitude, v.Longitude, 0, 2000)
	markers := Project(v, []models.CampusLocation{far})
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if markers[0].Y != 80 {
		t.Errorf("Y = %v, want clamp at 80", markers[0].Y)
	}
	if markers[0].Scale != MinScale {
		t.Errorf("Scale = %v, want floor %v", markers[0].Scale, MinScale)
	}

	// Target at the viewer's feet: Y stays within [20, 80].
	near := models.CampusLocation{ID: 2, Latitude: v.Latitude, Longitude: v.Longitude}
	markers = Project(v, []models.CampusLocation{near})
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker for coincident target, got %d", len(markers))
	}
	if markers[0].Y < 20 || markers[0].Y > 80 {
		t.Errorf("Y = %v out of [20, 80]", markers[0].Y)
	}
}

func TestProject_HeadingRotatesScene(t *testing.T) {
	t.Parallel()

	base := Viewer{Latitude: 12.9716, Longitude: 77.5946, Heading: 0}
	east := locationAtBearing(1, base.Latitude, base.Longitude, 90, 100)

	// Facing north, a target due east sits outside the 60 degree cone.
	if got := Project(base, []models.CampusLocation{east}); len(got) != 0 {
		t.Fatalf("east target visible while facing north")
	}

	// Turn toward it and it appears centered.
	facing := Viewer{Latitude: base.Latitude, Longitude: base.Longitude, Heading: 90}
	markers := Project(facing, []models.CampusLocation{east})
	if len(markers) != 1 {
		t.Fatalf("east target not visible while facing east")
	}
	if math.Abs(markers[0].X-50) > 0.5 {
		t.Errorf("X = %v, want ~50 when facing the target", markers[0].X)
	}
}

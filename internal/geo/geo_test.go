package geo

import (
	"math"
	"testing"
)

func TestDistance_CoincidentPointsIsZero(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{12.9716, 77.5946},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance(%v,%v -> same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	// One degree of latitude along a meridian is ~111.19 km on a sphere of
	// radius 6371 km.
	d := Distance(0, 0, 1, 0)
	if math.Abs(d-111195) > 100 {
		t.Errorf("Distance 1 degree latitude = %v, want ~111195", d)
	}

	// Short campus-scale hop: ~157 m for 0.001 degrees at the equator on
	// both axes.
	d = Distance(0, 0, 0.001, 0.001)
	if math.Abs(d-157.2) > 1 {
		t.Errorf("Distance campus hop = %v, want ~157.2", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := Distance(12.9716, 77.5946, 12.9750, 77.6000)
	b := Distance(12.9750, 77.6000, 12.9716, 77.5946)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Distance not symmetric: %v vs %v", a, b)
	}
}

func TestBearing_Cardinals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"north", 0, 0, 1, 0, 0},
		{"east", 0, 0, 0, 1, 90},
		{"south", 1, 0, 0, 0, 180},
		{"west", 0, 1, 0, 0, 270},
	}
	for _, tc := range cases {
		got := Bearing(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("%s: Bearing = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBearing_RangeAndCoincident(t *testing.T) {
	t.Parallel()

	// Defined (not NaN) for coincident points.
	if b := Bearing(12.9716, 77.5946, 12.9716, 77.5946); math.IsNaN(b) {
		t.Fatal("Bearing for coincident points is NaN")
	}

	// Always in [0, 360) across a sweep of directions.
	for i := 0; i < 360; i += 7 {
		lat2 := 12.9716 + 0.01*math.Cos(float64(i)*math.Pi/180)
		lon2 := 77.5946 + 0.01*math.Sin(float64(i)*math.Pi/180)
		b := Bearing(12.9716, 77.5946, lat2, lon2)
		if b < 0 || b >= 360 {
			t.Errorf("Bearing out of range: %v", b)
		}
	}
}

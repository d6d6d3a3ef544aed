package geo

import (
	"math"
	"testing"
)

func TestDistanceMetersIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-6.200000, 106.816666},
		{89.9, -179.9},
	}
	for _, p := range points {
		got := DistanceMeters(p[0], p[1], p[0], p[1])
		if got != 0 {
			t.Errorf("DistanceMeters(p, p) = %v for %v, want 0", got, p)
		}
		if math.IsNaN(got) {
			t.Errorf("DistanceMeters(p, p) = NaN for %v", p)
		}
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	a := [2]float64{-6.200000, 106.816666}
	b := [2]float64{-6.914744, 107.609810}
	ab := DistanceMeters(a[0], a[1], b[0], b[1])
	ba := DistanceMeters(b[0], b[1], a[0], a[1])
	if ab != ba {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceMetersMonotonic(t *testing.T) {
	// Moving straight north from the office, distance must never shrink.
	const officeLat, officeLon = -6.200000, 106.816666
	prev := 0.0
	for i := 1; i <= 10; i++ {
		lat := officeLat - float64(i)*0.001
		d := DistanceMeters(lat, officeLon, officeLat, officeLon)
		if d <= prev {
			t.Fatalf("distance decreased at step %d: %v <= %v", i, d, prev)
		}
		prev = d
	}
}

func TestDistanceMetersKnownDistance(t *testing.T) {
	// ~1000m north of the office; 0.009 degrees latitude.
	got := DistanceMeters(-6.209000, 106.816666, -6.200000, 106.816666)
	if got < 990 || got > 1010 {
		t.Errorf("DistanceMeters ~1km north = %v, want within 1%% of 1000", got)
	}
}

func TestClassifyBoundary(t *testing.T) {
	const officeLat, officeLon = -6.200000, 106.816666

	same := Classify(officeLat, officeLon, officeLat, officeLon, 100)
	if !same.WithinRadius || same.DistanceMeters != 0 {
		t.Errorf("Classify(same point) = %+v, want within with distance 0", same)
	}

	far := Classify(-6.209000, 106.816666, officeLat, officeLon, 100)
	if far.WithinRadius {
		t.Errorf("Classify(~1km away, radius 100) = %+v, want outside", far)
	}

	// A point at exactly the radius is inside; a hair beyond is not.
	exact := DistanceMeters(-6.209000, 106.816666, officeLat, officeLon)
	onEdge := Classify(-6.209000, 106.816666, officeLat, officeLon, exact)
	if !onEdge.WithinRadius {
		t.Errorf("point at exactly radius distance should be within, got %+v", onEdge)
	}
	justOut := Classify(-6.209000, 106.816666, officeLat, officeLon, exact-0.01)
	if justOut.WithinRadius {
		t.Errorf("point just outside radius should be outside, got %+v", justOut)
	}
}

func TestIsAccuracyAcceptable(t *testing.T) {
	cases := []struct {
		accuracy float64
		max      float64
		want     bool
	}{
		{50, 50, true},
		{50.1, 50, false},
		{0, 50, true},
		{12.5, 30, true},
		{100, 50, false},
	}
	for _, c := range cases {
		got := IsAccuracyAcceptable(c.accuracy, c.max)
		if got != c.want {
			t.Errorf("IsAccuracyAcceptable(%v, %v) = %v, want %v", c.accuracy, c.max, got, c.want)
		}
	}
}

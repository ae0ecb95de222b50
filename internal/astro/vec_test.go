package astro

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3_Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 5, 0.5}

	if got := a.Add(b); !vecAlmostEqual(got, Vec3{-3, 7, 3.5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, Vec3{5, -3, 2.5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); !vecAlmostEqual(got, Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); !almostEqual(got, -4+10+1.5) {
		t.Errorf("Dot = %v", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); !vecAlmostEqual(got, Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v", got)
	}
	if got := (Vec3{3, 4, 0}).Norm(); !almostEqual(got, 5) {
		t.Errorf("Norm = %v", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := (Vec3{0, 0, -7}).Normalize(); !vecAlmostEqual(got, Vec3{0, 0, -1}) {
		t.Errorf("Normalize(-7z) = %v", got)
	}
	if got := (Vec3{}).Normalize(); !vecAlmostEqual(got, Vec3{Z: 1}) {
		t.Errorf("Normalize(zero) = %v, want (0,0,1)", got)
	}
}

func TestApproach_ConvergesWithoutSnapping(t *testing.T) {
	current, target := 0.0, 100.0
	prev := current
	for i := 0; i < 200; i++ {
		current = Approach(current, target, 0.08)
		if current == target && i < 50 {
			t.Fatalf("Approach snapped to target on frame %d", i)
		}
		if current <= prev {
			t.Fatalf("Approach not monotonic on frame %d: %v -> %v", i, prev, current)
		}
		prev = current
	}
	if math.Abs(current-target) > 0.01 {
		t.Errorf("Approach did not converge: %v", current)
	}
}

func TestApproachVec3(t *testing.T) {
	got := ApproachVec3(Vec3{}, Vec3{10, -10, 4}, 0.5)
	if !vecAlmostEqual(got, Vec3{5, -5, 2}) {
		t.Errorf("ApproachVec3 = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSphericalToCartesian(t *testing.T) {
	tests := []struct {
		name                   string
		raHours, decDeg, distPc float64
		want                   Vec3
	}{
		{"origin direction", 0, 0, 100, Vec3{X: 100 * DistanceScale}},
		{"north pole", 0, 90, 100, Vec3{Y: 100 * DistanceScale}},
		{"six hours RA", 6, 0, 100, Vec3{Z: -100 * DistanceScale}},
		{"twelve hours RA", 12, 0, 100, Vec3{X: -100 * DistanceScale}},
		{"zero distance", 4, 30, 0, Vec3{}},
	}

	for _, tt := range tests {
		got := SphericalToCartesian(tt.raHours, tt.decDeg, tt.distPc)
		if !vecAlmostEqual(got, tt.want) {
			t.Errorf("%s: SphericalToCartesian(%v, %v, %v) = %v, want %v",
				tt.name, tt.raHours, tt.decDeg, tt.distPc, got, tt.want)
		}
	}
}

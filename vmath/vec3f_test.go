package vmath

import (
	"math"
	"testing"
)

const testEps = 1e-9

func vecNear(a, b Vec3F) bool {
	return NearlyEqual(a.X, b.X, testEps) && NearlyEqual(a.Y, b.Y, testEps) && NearlyEqual(a.Z, b.Z, testEps)
}

func TestV3FArithmetic(t *testing.T) {
	a := V3F(1, 2, 3)
	b := V3F(-4, 0.5, 2)

	if got := V3FAdd(a, b); !vecNear(got, V3F(-3, 2.5, 5)) {
		t.Errorf("V3FAdd = %+v", got)
	}
	if got := V3FSub(a, b); !vecNear(got, V3F(5, 1.5, 1)) {
		t.Errorf("V3FSub = %+v", got)
	}
	if got := V3FScale(a, -2); !vecNear(got, V3F(-2, -4, -6)) {
		t.Errorf("V3FScale = %+v", got)
	}
	if got := V3FDot(a, b); !NearlyEqual(got, -4+1+6, testEps) {
		t.Errorf("V3FDot = %v", got)
	}
}

func TestV3FCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3F
		want Vec3F
	}{
		{"X cross Y", V3F(1, 0, 0), V3F(0, 1, 0), V3F(0, 0, 1)},
		{"Y cross Z", V3F(0, 1, 0), V3F(0, 0, 1), V3F(1, 0, 0)},
		{"Z cross X", V3F(0, 0, 1), V3F(1, 0, 0), V3F(0, 1, 0)},
		{"Parallel", V3F(2, 0, 0), V3F(5, 0, 0), V3F(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V3FCross(tt.a, tt.b); !vecNear(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(V3F(3, 0, 4))
	if !vecNear(n, V3F(0.6, 0, 0.8)) {
		t.Errorf("Expected (0.6, 0, 0.8), got %+v", n)
	}
	if !NearlyEqual(V3FMag(n), 1, testEps) {
		t.Errorf("Expected unit length, got %v", V3FMag(n))
	}
}

// TestV3FNormalizeZero verifies zero input never produces NaN
func TestV3FNormalizeZero(t *testing.T) {
	n := V3FNormalize(Vec3F{})
	if !V3FIsZero(n) {
		t.Errorf("Expected zero vector, got %+v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Errorf("Normalize of zero vector produced NaN")
	}
}

func TestV3FDist(t *testing.T) {
	if d := V3FDist(V3F(1, 1, 1), V3F(1, 4, 5)); !NearlyEqual(d, 5, testEps) {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if r := DegToRad(180); !NearlyEqual(r, math.Pi, testEps) {
		t.Errorf("DegToRad(180) = %v", r)
	}
	if d := RadToDeg(math.Pi / 2); !NearlyEqual(d, 90, testEps) {
		t.Errorf("RadToDeg(pi/2) = %v", d)
	}
}

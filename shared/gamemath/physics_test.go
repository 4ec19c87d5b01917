package gamemath

import (
	"math"
	"testing"
)

func TestApplyFriction(t *testing.T) {
	cases := []struct {
		name     string
		speed    float64
		friction float64
		want     float64
	}{
		{"positive_decays", 10, 3, 7},
		{"negative_decays", -10, 3, -7},
		{"no_overshoot_positive", 2, 3, 0},
		{"no_overshoot_negative", -2, 3, 0},
		{"exact", 3, 3, 0},
		{"already_zero", 0, 3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ApplyFriction(c.speed, c.friction); got != c.want {
				t.Fatalf("ApplyFriction(%v, %v) = %v, want %v", c.speed, c.friction, got, c.want)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampSpeed(500, 420); got != 420 {
		t.Fatalf("ClampSpeed upper = %v", got)
	}
	if got := ClampSpeed(-500, 420); got != -420 {
		t.Fatalf("ClampSpeed lower = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp high = %v", got)
	}
	if Sign(math.NaN()) != 0 || Sign(-0.1) != -1 || Sign(2) != 1 || Sign(0) != 0 {
		t.Fatalf("Sign returned unexpected values")
	}
	if got := Lerp(0, 100, 0.18); math.Abs(got-18) > 1e-9 {
		t.Fatalf("Lerp = %v, want 18", got)
	}
}

package sim

import (
	"testing"

	"github.com/automoto/solar-sprint/shared/leveldata"
)

func stackedLevel(platforms ...leveldata.Rect) *leveldata.Level {
	return &leveldata.Level{
		Name:      "stacked",
		Width:     800,
		Height:    800,
		Spawn:     leveldata.Point{X: 100, Y: 100},
		Exit:      leveldata.Rect{X: 700, Y: 100, W: 60, H: 100},
		Platforms: platforms,
		Hazards:   []leveldata.Rect{{X: 300, Y: 600, W: 100, H: 20}},
	}
}

func TestResolveAxisFirstHitWins(t *testing.T) {
	low := leveldata.Rect{X: 0, Y: 470, W: 400, H: 100}
	high := leveldata.Rect{X: 0, Y: 460, W: 400, H: 100}

	cases := []struct {
		name  string
		order []leveldata.Rect
		wantY float64
	}{
		{"low_listed_first", []leveldata.Rect{low, high}, 470 - 42},
		{"high_listed_first", []leveldata.Rect{high, low}, 460 - 42},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col := newCollider(stackedLevel(c.order...), 36, 42)
			b := Body{X: 100, Y: 400, W: 36, H: 42}
			if !col.resolveAxis(&b, 100, axisY) {
				t.Fatalf("expected a hit")
			}
			if b.Y != c.wantY {
				t.Fatalf("Y = %v, want %v", b.Y, c.wantY)
			}
		})
	}
}

func TestResolveAxisDirections(t *testing.T) {
	block := leveldata.Rect{X: 200, Y: 200, W: 100, H: 100}
	col := newCollider(stackedLevel(block), 36, 42)

	cases := []struct {
		name   string
		start  Body
		amount float64
		a      axis
		want   Body
		hit    bool
	}{
		{"right_into_block", Body{X: 160, Y: 220, W: 36, H: 42}, 10, axisX, Body{X: 164, Y: 220, W: 36, H: 42}, true},
		{"left_into_block", Body{X: 305, Y: 220, W: 36, H: 42}, -10, axisX, Body{X: 300, Y: 220, W: 36, H: 42}, true},
		{"down_onto_block", Body{X: 220, Y: 150, W: 36, H: 42}, 20, axisY, Body{X: 220, Y: 158, W: 36, H: 42}, true},
		{"up_into_block", Body{X: 220, Y: 305, W: 36, H: 42}, -10, axisY, Body{X: 220, Y: 300, W: 36, H: 42}, true},
		{"touching_is_clear", Body{X: 150, Y: 220, W: 36, H: 42}, 14, axisX, Body{X: 164, Y: 220, W: 36, H: 42}, false},
		{"open_air", Body{X: 500, Y: 500, W: 36, H: 42}, 30, axisY, Body{X: 500, Y: 530, W: 36, H: 42}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := c.start
			if got := col.resolveAxis(&b, c.amount, c.a); got != c.hit {
				t.Fatalf("hit = %v, want %v", got, c.hit)
			}
			if b != c.want {
				t.Fatalf("body = %+v, want %+v", b, c.want)
			}
		})
	}
}

func TestColliderTriggers(t *testing.T) {
	col := newCollider(stackedLevel(leveldata.Rect{X: 0, Y: 700, W: 800, H: 100}), 36, 42)

	if !col.touchingHazard(leveldata.Rect{X: 310, Y: 590, W: 36, H: 42}) {
		t.Fatalf("expected hazard overlap")
	}
	if col.touchingHazard(leveldata.Rect{X: 310, Y: 558, W: 36, H: 42}) {
		t.Fatalf("touching the hazard edge should not count")
	}
	if !col.touchingExit(leveldata.Rect{X: 690, Y: 150, W: 36, H: 42}) {
		t.Fatalf("expected exit overlap")
	}
	if col.touchingExit(leveldata.Rect{X: 100, Y: 150, W: 36, H: 42}) {
		t.Fatalf("unexpected exit overlap")
	}
}

func TestColliderHandlesNegativeCoordinates(t *testing.T) {
	level := leveldata.SolarFacility()
	col := newCollider(level, 36, 42)

	// Pressed against the west wall, which starts at x=-320.
	b := Body{X: -195, Y: 300, W: 36, H: 42}
	if !col.resolveAxis(&b, -10, axisX) {
		t.Fatalf("expected west wall hit")
	}
	if b.X != -200 {
		t.Fatalf("X = %v, want -200", b.X)
	}
}

package sim

import (
	"time"

	"github.com/automoto/solar-sprint/shared/leveldata"
)

// Body is the player's physical state.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
	Charge   int // remaining double jumps
}

// Rect returns the body's bounding box.
func (b Body) Rect() leveldata.Rect {
	return leveldata.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the midpoint of the body.
func (b Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Timers are countdowns that never go below zero.
type Timers struct {
	Coyote       time.Duration
	JumpBuffer   time.Duration
	DashActive   time.Duration
	DashCooldown time.Duration
}

// Dashing reports whether a dash (or boost) is still carrying the body.
func (t Timers) Dashing() bool {
	return t.DashActive > 0
}

func countdown(d, dt time.Duration) time.Duration {
	if d <= dt {
		return 0
	}
	return d - dt
}

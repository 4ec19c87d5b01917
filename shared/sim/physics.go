package sim

import (
	"math"
	"time"

	"github.com/automoto/solar-sprint/shared/gamemath"
)

func (w *World) tickTimers(dt time.Duration) {
	t := &w.timers
	if w.body.Grounded {
		t.Coyote = w.tuning.CoyoteTime
		w.body.Charge = 1
	} else {
		t.Coyote = countdown(t.Coyote, dt)
	}
	t.JumpBuffer = countdown(t.JumpBuffer, dt)
	t.DashCooldown = countdown(t.DashCooldown, dt)
	t.DashActive = countdown(t.DashActive, dt)
}

// integrate applies acceleration, friction and gravity, then moves the body
// one axis at a time.
func (w *World) integrate(in Input, dt time.Duration, ev *Events) {
	seconds := dt.Seconds()
	b := &w.body
	tn := w.tuning

	if w.timers.Dashing() {
		b.VX *= tn.DashDecay
	} else {
		accel := tn.AerialControl
		maxSpeed := tn.MaxRunSpeed * tn.AirSpeedFactor
		if b.Grounded {
			accel = tn.RunAcceleration
			maxSpeed = tn.MaxRunSpeed
		}

		if d := in.Direction(); d != 0 {
			b.VX += d * accel * seconds
		} else {
			b.VX = gamemath.ApplyFriction(b.VX, tn.Friction*seconds)
		}
		b.VX = gamemath.ClampSpeed(b.VX, maxSpeed)
	}

	b.VY = math.Min(b.VY+tn.Gravity*seconds, tn.TerminalFallSpeed)

	if w.col.resolveAxis(b, b.VX*seconds, axisX) {
		b.VX = 0
	}

	wasGrounded := b.Grounded
	moveY := b.VY * seconds
	if w.col.resolveAxis(b, moveY, axisY) {
		if moveY > 0 {
			b.Grounded = true
			b.Charge = 1
			w.timers.Coyote = tn.CoyoteTime
			if !wasGrounded {
				ev.Landed = true
			}
		}
		b.VY = 0
	} else {
		b.Grounded = false
	}
}

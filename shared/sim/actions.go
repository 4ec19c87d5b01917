package sim

import (
	"github.com/automoto/solar-sprint/shared/gamemath"
)

// facing picks a direction for dashes and boosts: held input first, then
// current horizontal motion, then right.
func facing(in Input, vx float64) float64 {
	if d := in.Direction(); d != 0 {
		return d
	}
	if s := gamemath.Sign(vx); s != 0 {
		return s
	}
	return 1
}

func (w *World) tryJump(in Input, ev *Events) {
	if !(w.timers.JumpBuffer > 0 || in.Jump) || w.prev.Jump {
		return
	}

	b := &w.body
	if b.Grounded || w.timers.Coyote > 0 {
		b.VY = -w.tuning.JumpStrength
		b.Grounded = false
		w.timers.Coyote = 0
		w.timers.JumpBuffer = 0
		ev.Jumped = true
		return
	}

	if b.Charge > 0 {
		b.VY = -w.tuning.DoubleJumpStrength
		b.Charge--
		w.timers.JumpBuffer = 0
		ev.DoubleJumped = true
	}
}

func (w *World) tryDash(in Input, edges Edges, ev *Events) {
	if !edges.DashPressed {
		return
	}
	if w.timers.DashCooldown > 0 || w.timers.DashActive > 0 {
		return
	}

	b := &w.body
	b.VX = facing(in, b.VX) * w.tuning.DashSpeed
	b.VY = gamemath.Clamp(b.VY, -w.tuning.JumpStrength, w.tuning.JumpStrength/1.5)
	w.timers.DashActive = w.tuning.DashDuration
	w.timers.DashCooldown = w.tuning.DashCooldown
	ev.Dashed = true
}

// Package sim is the solar sprint simulation: one player body moving through
// a static level under gravity, with jumps, dashes, boost pads, hazards and a
// timed goal. It has no rendering or clock of its own; the host calls Step
// once per frame.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/solarlune/resolv"
)

// ErrPlayerSizeChanged is returned by SetTuning when the body size differs
// from the one the level was validated against.
var ErrPlayerSizeChanged = errors.New("player size cannot change on a live world")

// Frame is the host input to one step. Now is a reading of the host clock
// and is only used to stamp run start and finish.
type Frame struct {
	Input Input
	Delta time.Duration
	Now   time.Duration
}

// Events reports what happened during one step.
type Events struct {
	Started      bool
	Jumped       bool
	DoubleJumped bool
	Dashed       bool
	Landed       bool
	Boosted      []int
	Reset        bool
	Failure      bool // reset caused by a hazard
	Finished     bool
	NewBest      bool
	Elapsed      time.Duration // set when Finished
}

// Option configures a World.
type Option func(*World)

// WithBestTime seeds the best time, usually from durable storage.
func WithBestTime(best time.Duration) Option {
	return func(w *World) {
		if best > 0 {
			w.best = best
			w.hasBest = true
		}
	}
}

// WithRecorder registers r to receive every new best.
func WithRecorder(r BestRecorder) Option {
	return func(w *World) {
		w.recorder = r
	}
}

// World owns all mutable sprint state. It is not safe for concurrent use.
type World struct {
	level  *leveldata.Level
	tuning Tuning
	col    *collider

	body      Body
	timers    Timers
	prev      Input
	collected []bool

	started    bool
	finished   bool
	startedAt  time.Duration
	finishedAt time.Duration

	best     time.Duration
	hasBest  bool
	recorder BestRecorder
}

// New validates the tuning and level and returns a world with the player at
// spawn.
func New(level *leveldata.Level, tuning Tuning, opts ...Option) (*World, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if err := leveldata.Validate(level, tuning.PlayerWidth, tuning.PlayerHeight); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	lvl := level.Clone()
	w := &World{
		level:     lvl,
		tuning:    tuning,
		col:       newCollider(lvl, tuning.PlayerWidth, tuning.PlayerHeight),
		collected: make([]bool, len(lvl.Boosts)),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Reset()
	return w, nil
}

// Step advances the simulation by one frame.
func (w *World) Step(f Frame) Events {
	var ev Events

	dt := f.Delta
	if dt < 0 {
		dt = 0
	}
	if dt > w.tuning.MaxFrameDelta {
		dt = w.tuning.MaxFrameDelta
	}

	in := f.Input
	edges := edgesFrom(w.prev, in)

	if in.Any() {
		w.start(f.Now, &ev)
	}

	w.tickTimers(dt)
	if edges.JumpPressed {
		w.timers.JumpBuffer = w.tuning.JumpBuffer
	}
	w.tryJump(in, &ev)
	w.tryDash(in, edges, &ev)
	w.integrate(in, dt, &ev)
	w.collectBoosts(in, &ev)

	body := w.body.Rect()
	if w.col.touchingHazard(body) {
		w.Reset()
		ev.Reset = true
		ev.Failure = true
	} else if w.col.touchingExit(body) {
		w.finish(f.Now, &ev)
	}

	w.prev = in
	return ev
}

// Reset puts the player back at spawn and clears the run. The best time is
// kept.
func (w *World) Reset() {
	w.body = Body{
		X:      w.level.Spawn.X,
		Y:      w.level.Spawn.Y,
		W:      w.tuning.PlayerWidth,
		H:      w.tuning.PlayerHeight,
		Charge: 1,
	}
	w.timers = Timers{}
	for i := range w.collected {
		w.collected[i] = false
	}
	w.started = false
	w.finished = false
	w.startedAt = 0
	w.finishedAt = 0
}

// SetTuning swaps the constants on a live world. The player size is fixed.
func (w *World) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.PlayerWidth != w.tuning.PlayerWidth || t.PlayerHeight != w.tuning.PlayerHeight {
		return ErrPlayerSizeChanged
	}
	w.tuning = t
	return nil
}

func (w *World) Body() Body                { return w.body }
func (w *World) Timers() Timers            { return w.timers }
func (w *World) Tuning() Tuning            { return w.tuning }
func (w *World) Input() Input              { return w.prev }
func (w *World) StartedAt() time.Duration  { return w.startedAt }
func (w *World) FinishedAt() time.Duration { return w.finishedAt }

// Level returns a copy of the layout.
func (w *World) Level() *leveldata.Level {
	return w.level.Clone()
}

// State derives the run phase.
func (w *World) State() RunState {
	switch {
	case w.finished:
		return Finished
	case w.started:
		return Running
	}
	return Idle
}

// Elapsed is the run time at now, frozen once finished and zero while idle.
func (w *World) Elapsed(now time.Duration) time.Duration {
	switch {
	case w.finished:
		return w.finishedAt - w.startedAt
	case w.started && now > w.startedAt:
		return now - w.startedAt
	}
	return 0
}

// Best returns the best run time and whether one exists.
func (w *World) Best() (time.Duration, bool) {
	return w.best, w.hasBest
}

// Collected returns the indices of boosts used this run, ascending.
func (w *World) Collected() []int {
	var out []int
	for i, used := range w.collected {
		if used {
			out = append(out, i)
		}
	}
	return out
}

// IsCollected reports whether boost i has been used this run.
func (w *World) IsCollected(i int) bool {
	return i >= 0 && i < len(w.collected) && w.collected[i]
}

// CollisionSpace exposes the broadphase space for debug drawing. Object
// positions are offset by SpaceOffset.
func (w *World) CollisionSpace() *resolv.Space {
	return w.col.space
}

// SpaceOffset is added to world coordinates to get space coordinates.
func (w *World) SpaceOffset() (float64, float64) {
	return w.col.offX, w.col.offY
}

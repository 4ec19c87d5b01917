package sim

import (
	"math"
	"time"
)

// RunState is the phase of the current attempt.
type RunState int

const (
	Idle RunState = iota
	Running
	Finished
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// BestRecorder is notified whenever a run beats the stored best.
type BestRecorder interface {
	Record(best time.Duration)
}

func (w *World) start(now time.Duration, ev *Events) {
	if w.started {
		return
	}
	w.started = true
	w.startedAt = now
	ev.Started = true
}

func (w *World) finish(now time.Duration, ev *Events) {
	if !w.started || w.finished {
		return
	}
	w.finished = true
	w.finishedAt = now

	elapsed := w.finishedAt - w.startedAt
	ev.Finished = true
	ev.Elapsed = elapsed

	if elapsed > 0 && (!w.hasBest || elapsed < w.best) {
		w.best = elapsed
		w.hasBest = true
		ev.NewBest = true
		if w.recorder != nil {
			w.recorder.Record(elapsed)
		}
	}
}

func (w *World) collectBoosts(in Input, ev *Events) {
	b := &w.body
	cx, cy := b.Center()
	reach := math.Max(b.W, b.H) / 2

	for i, boost := range w.level.Boosts {
		if w.collected[i] {
			continue
		}
		if math.Hypot(cx-boost.X, cy-boost.Y) >= boost.Radius+reach {
			continue
		}

		w.collected[i] = true
		speed := math.Max(math.Abs(b.VX), w.tuning.MaxRunSpeed*w.tuning.BoostSpeedFactor)
		b.VX = facing(in, b.VX) * speed
		b.VY = math.Min(b.VY, 0) - w.tuning.BoostLift
		w.timers.DashCooldown = 0
		w.timers.DashActive = w.tuning.DashDuration
		ev.Boosted = append(ev.Boosted, i)
	}
}

// Package replay drives a sim.World from a scripted input sequence at a fixed
// frame delta, for tuning regressions without a window.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/automoto/solar-sprint/shared/sim"
	"gopkg.in/yaml.v3"
)

// DefaultDeltaMS is used when a script omits delta_ms.
const DefaultDeltaMS = 16

var ErrEmptyScript = errors.New("script has no frames")

// Segment holds one input state for a number of frames.
type Segment struct {
	Frames int  `yaml:"frames"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Jump   bool `yaml:"jump"`
	Dash   bool `yaml:"dash"`
}

func (s Segment) Input() sim.Input {
	return sim.Input{Left: s.Left, Right: s.Right, Jump: s.Jump, Dash: s.Dash}
}

type Script struct {
	DeltaMS  int       `yaml:"delta_ms"`
	Segments []Segment `yaml:"segments"`
}

// Delta is the fixed step length.
func (s *Script) Delta() time.Duration {
	return time.Duration(s.DeltaMS) * time.Millisecond
}

// TotalFrames sums the segment lengths.
func (s *Script) TotalFrames() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Frames
	}
	return n
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if s.DeltaMS == 0 {
		s.DeltaMS = DefaultDeltaMS
	}
	if s.DeltaMS < 0 {
		return nil, fmt.Errorf("delta_ms must be positive, got %d", s.DeltaMS)
	}
	for i, seg := range s.Segments {
		if seg.Frames <= 0 {
			return nil, fmt.Errorf("segment %d: frames must be positive, got %d", i, seg.Frames)
		}
	}
	if s.TotalFrames() == 0 {
		return nil, ErrEmptyScript
	}
	return &s, nil
}

// FrameEvent is a step that produced at least one event.
type FrameEvent struct {
	Frame  int
	Now    time.Duration
	Events sim.Events
}

type Result struct {
	Frames   int
	Finished bool
	Elapsed  time.Duration // last finish time
	Failures int
	Boosts   int
	Final    sim.Body
	State    sim.RunState
}

// Run steps w through the script. onEvent, if set, sees every frame that
// produced events.
func Run(w *sim.World, s *Script, onEvent func(FrameEvent)) Result {
	var res Result
	delta := s.Delta()
	var now time.Duration

	for _, seg := range s.Segments {
		in := seg.Input()
		for i := 0; i < seg.Frames; i++ {
			now += delta
			ev := w.Step(sim.Frame{Input: in, Delta: delta, Now: now})

			if ev.Finished {
				res.Finished = true
				res.Elapsed = ev.Elapsed
			}
			if ev.Failure {
				res.Failures++
			}
			res.Boosts += len(ev.Boosted)

			if onEvent != nil && Describe(ev) != "" {
				onEvent(FrameEvent{Frame: res.Frames, Now: now, Events: ev})
			}
			res.Frames++
		}
	}

	res.Final = w.Body()
	res.State = w.State()
	return res
}

// Describe lists the events in ev as space separated words, or "" when
// nothing happened.
func Describe(ev sim.Events) string {
	var parts []string
	add := func(on bool, word string) {
		if on {
			parts = append(parts, word)
		}
	}
	add(ev.Started, "started")
	add(ev.Jumped, "jump")
	add(ev.DoubleJumped, "double-jump")
	add(ev.Dashed, "dash")
	add(ev.Landed, "landed")
	for _, i := range ev.Boosted {
		parts = append(parts, fmt.Sprintf("boost[%d]", i))
	}
	add(ev.Failure, "hazard")
	add(ev.Reset && !ev.Failure, "reset")
	if ev.Finished {
		parts = append(parts, fmt.Sprintf("finished(%s)", sim.FormatTime(ev.Elapsed)))
	}
	add(ev.NewBest, "new-best")
	return strings.Join(parts, " ")
}

package sim

import (
	"errors"
	"testing"
	"time"
)

func TestInputDirection(t *testing.T) {
	cases := []struct {
		in   Input
		want float64
		any  bool
	}{
		{Input{}, 0, false},
		{Input{Left: true}, -1, true},
		{Input{Right: true}, 1, true},
		{Input{Left: true, Right: true}, 0, true},
		{Input{Jump: true}, 0, true},
		{Input{Dash: true}, 0, true},
	}
	for _, c := range cases {
		if got := c.in.Direction(); got != c.want {
			t.Fatalf("%+v.Direction() = %v, want %v", c.in, got, c.want)
		}
		if got := c.in.Any(); got != c.any {
			t.Fatalf("%+v.Any() = %v, want %v", c.in, got, c.any)
		}
	}
}

func TestEdges(t *testing.T) {
	cases := []struct {
		name      string
		prev, cur Input
		want      Edges
	}{
		{"press_jump", Input{}, Input{Jump: true}, Edges{JumpPressed: true}},
		{"hold_jump", Input{Jump: true}, Input{Jump: true}, Edges{}},
		{"release", Input{Jump: true, Dash: true}, Input{}, Edges{}},
		{"press_both", Input{}, Input{Jump: true, Dash: true}, Edges{JumpPressed: true, DashPressed: true}},
		{"press_dash_holding_jump", Input{Jump: true}, Input{Jump: true, Dash: true}, Edges{DashPressed: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := edgesFrom(c.prev, c.cur); got != c.want {
				t.Fatalf("edgesFrom = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestCountdown(t *testing.T) {
	if got := countdown(10*time.Millisecond, 16*time.Millisecond); got != 0 {
		t.Fatalf("countdown went negative: %v", got)
	}
	if got := countdown(100*time.Millisecond, 16*time.Millisecond); got != 84*time.Millisecond {
		t.Fatalf("countdown = %v", got)
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"negative_gravity", func(tn *Tuning) { tn.Gravity = -1 }},
		{"zero_coyote", func(tn *Tuning) { tn.CoyoteTime = 0 }},
		{"zero_frame_clamp", func(tn *Tuning) { tn.MaxFrameDelta = 0 }},
		{"decay_zero", func(tn *Tuning) { tn.DashDecay = 0 }},
		{"decay_above_one", func(tn *Tuning) { tn.DashDecay = 1.01 }},
		{"no_width", func(tn *Tuning) { tn.PlayerWidth = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tn := DefaultTuning()
			c.mutate(&tn)
			if err := tn.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate() = %v", err)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.000"},
		{-time.Second, "0.000"},
		{1234 * time.Millisecond, "1.234"},
		{61*time.Second + 250*time.Millisecond, "61.250"},
		{999 * time.Microsecond, "0.001"},
	}
	for _, c := range cases {
		if got := FormatTime(c.in); got != c.want {
			t.Fatalf("FormatTime(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

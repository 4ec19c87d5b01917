package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is wrapped by Tuning.Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every physics and timing constant of the sprint. Speeds are
// pixels per second, accelerations pixels per second squared.
type Tuning struct {
	Gravity            float64 `yaml:"gravity"`
	RunAcceleration    float64 `yaml:"run_acceleration"`
	AerialControl      float64 `yaml:"aerial_control"`
	MaxRunSpeed        float64 `yaml:"max_run_speed"`
	AirSpeedFactor     float64 `yaml:"air_speed_factor"`
	Friction           float64 `yaml:"friction"`
	JumpStrength       float64 `yaml:"jump_strength"`
	DoubleJumpStrength float64 `yaml:"double_jump_strength"`
	TerminalFallSpeed  float64 `yaml:"terminal_fall_speed"`

	DashSpeed float64 `yaml:"dash_speed"`
	DashDecay float64 `yaml:"dash_decay"` // per-frame multiplier while dashing

	BoostSpeedFactor float64 `yaml:"boost_speed_factor"`
	BoostLift        float64 `yaml:"boost_lift"`

	CoyoteTime    time.Duration `yaml:"coyote_time"`
	JumpBuffer    time.Duration `yaml:"jump_buffer"`
	DashDuration  time.Duration `yaml:"dash_duration"`
	DashCooldown  time.Duration `yaml:"dash_cooldown"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
}

// DefaultTuning returns the stock solar sprint feel.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:            1800,
		RunAcceleration:    2200,
		AerialControl:      1400,
		MaxRunSpeed:        420,
		AirSpeedFactor:     1.1,
		Friction:           1600,
		JumpStrength:       620,
		DoubleJumpStrength: 560,
		TerminalFallSpeed:  1200,

		DashSpeed: 900,
		DashDecay: 0.98,

		BoostSpeedFactor: 1.2,
		BoostLift:        360,

		CoyoteTime:    110 * time.Millisecond,
		JumpBuffer:    140 * time.Millisecond,
		DashDuration:  120 * time.Millisecond,
		DashCooldown:  480 * time.Millisecond,
		MaxFrameDelta: 32 * time.Millisecond,

		PlayerWidth:  36,
		PlayerHeight: 42,
	}
}

// Validate rejects non-positive constants and a dash decay outside (0, 1].
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"gravity", t.Gravity},
		{"run_acceleration", t.RunAcceleration},
		{"aerial_control", t.AerialControl},
		{"max_run_speed", t.MaxRunSpeed},
		{"air_speed_factor", t.AirSpeedFactor},
		{"friction", t.Friction},
		{"jump_strength", t.JumpStrength},
		{"double_jump_strength", t.DoubleJumpStrength},
		{"terminal_fall_speed", t.TerminalFallSpeed},
		{"dash_speed", t.DashSpeed},
		{"boost_speed_factor", t.BoostSpeedFactor},
		{"boost_lift", t.BoostLift},
		{"player_width", t.PlayerWidth},
		{"player_height", t.PlayerHeight},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"coyote_time", t.CoyoteTime},
		{"jump_buffer", t.JumpBuffer},
		{"dash_duration", t.DashDuration},
		{"dash_cooldown", t.DashCooldown},
		{"max_frame_delta", t.MaxFrameDelta},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, d.name, d.value)
		}
	}

	if !(t.DashDecay > 0 && t.DashDecay <= 1) {
		return fmt.Errorf("%w: dash_decay must be in (0, 1], got %v", ErrInvalidTuning, t.DashDecay)
	}
	return nil
}

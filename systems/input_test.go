package systems

import (
	"testing"

	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/shared/sim"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"just pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"just released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionJump] = tt.prev
			input.Current[cfg.ActionJump] = tt.curr
			if got := GetAction(&input, cfg.ActionJump); got != tt.want {
				t.Fatalf("GetAction = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSprintInput(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionDash] = true
	input.Current[cfg.ActionReset] = true

	want := sim.Input{Right: true, Dash: true}
	if got := SprintInput(&input); got != want {
		t.Fatalf("SprintInput = %+v, want %+v", got, want)
	}
}

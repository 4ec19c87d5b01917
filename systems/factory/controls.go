package factory

import (
	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateControls builds the on-screen control pad.
func CreateControls(ecs *ecs.ECS) (*donburi.Entry, error) {
	pad := &components.TouchPad{}
	cui, err := ui.NewControlsUI(pad)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Controls.Spawn(ecs)
	components.Controls.Set(entry, &components.ControlsData{
		Pad: pad,
		UI:  cui.UI,
	})
	return entry, nil
}

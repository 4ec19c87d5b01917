package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the formatted HUD strings and the new-best banner fade.
type HUDData struct {
	Timer  string
	Best   string
	Status string
	Banner *gween.Tween // nil when no banner is showing
	Alpha  float32
}

var HUD = donburi.NewComponentType[HUDData]()

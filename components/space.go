package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData points at the simulation's collision space for the debug overlay.
// OffsetX and OffsetY convert space coordinates back to world pixels.
type SpaceData struct {
	Space            *resolv.Space
	OffsetX, OffsetY float64
}

var Space = donburi.NewComponentType[SpaceData]()

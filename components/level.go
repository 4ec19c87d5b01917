package components

import (
	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the immutable layout the renderers draw from.
type LevelData struct {
	CurrentLevel *leveldata.Level
	Names        []string
}

var Level = donburi.NewComponentType[LevelData]()

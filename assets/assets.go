// Package assets embeds the level maps shipped with the client.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/solar-sprint/shared/leveldata"
)

// DefaultLevel is the stem name of the level loaded when none is requested.
const DefaultLevel = "solar_facility"

//go:embed all:levels
var assetFS embed.FS

type LevelLoader struct {
	cache map[string]*leveldata.Level
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{cache: make(map[string]*leveldata.Level)}
}

// Names lists the embedded level stems in sorted order.
func (l *LevelLoader) Names() ([]string, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, "levels")
	if err != nil {
		return nil, err
	}
	for name, level := range levels {
		l.cache[name] = level
	}
	return names, nil
}

// Load returns a copy of the named embedded level.
func (l *LevelLoader) Load(name string) (*leveldata.Level, error) {
	if level, ok := l.cache[name]; ok {
		return level.Clone(), nil
	}
	level, err := leveldata.LoadLevel(assetFS, fmt.Sprintf("levels/%s.tmx", name))
	if err != nil {
		return nil, err
	}
	l.cache[name] = level
	return level.Clone(), nil
}

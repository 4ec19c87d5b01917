package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX maps.
const (
	GroupPlatforms = "Platforms"
	GroupWalls     = "Walls"
	GroupHazards   = "Hazards"
	GroupBoosts    = "Boosts"
	GroupSpawn     = "Spawn"
	GroupExit      = "Exit"
)

// ErrMissingObject is returned when a map lacks its Spawn or Exit object.
var ErrMissingObject = errors.New("required object missing")

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (tools).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	var haveSpawn, haveExit bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			level.Platforms = appendRects(level.Platforms, og.Objects)
		case GroupWalls:
			level.Walls = appendRects(level.Walls, og.Objects)
		case GroupHazards:
			level.Hazards = appendRects(level.Hazards, og.Objects)
		case GroupBoosts:
			for _, o := range og.Objects {
				level.Boosts = append(level.Boosts, Circle{
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
				})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				level.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				haveSpawn = true
			}
		case GroupExit:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Exit = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				haveExit = true
			}
		}
	}

	if !haveSpawn {
		return nil, fmt.Errorf("load TMX %s: %s: %w", tmxPath, GroupSpawn, ErrMissingObject)
	}
	if !haveExit {
		return nil, fmt.Errorf("load TMX %s: %s: %w", tmxPath, GroupExit, ErrMissingObject)
	}
	return level, nil
}

func appendRects(dst []Rect, objects []*tiled.Object) []Rect {
	for _, o := range objects {
		dst = append(dst, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
	}
	return dst
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrBadBounds    = errors.New("level bounds must be positive")
	ErrNoSolids     = errors.New("level has no solid geometry")
	ErrSpawnBlocked = errors.New("spawn overlaps a solid")
	ErrExitOnHazard = errors.New("exit overlaps a hazard")
	ErrBadShape     = errors.New("non-positive shape size")
)

// Validate checks the layout invariants for a player body of the given size.
func Validate(l *Level, playerW, playerH float64) error {
	if l == nil {
		return fmt.Errorf("validate level: %w", ErrNoSolids)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("validate %s: %w", l.Name, ErrBadBounds)
	}

	solids := l.Solids()
	if len(solids) == 0 {
		return fmt.Errorf("validate %s: %w", l.Name, ErrNoSolids)
	}
	for i, s := range solids {
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("validate %s: solid %d: %w", l.Name, i, ErrBadShape)
		}
	}
	for i, b := range l.Boosts {
		if b.Radius <= 0 {
			return fmt.Errorf("validate %s: boost %d: %w", l.Name, i, ErrBadShape)
		}
	}
	if l.Exit.W <= 0 || l.Exit.H <= 0 {
		return fmt.Errorf("validate %s: exit: %w", l.Name, ErrBadShape)
	}

	spawn := Rect{X: l.Spawn.X, Y: l.Spawn.Y, W: playerW, H: playerH}
	for i, s := range solids {
		if spawn.Intersects(s) {
			return fmt.Errorf("validate %s: solid %d: %w", l.Name, i, ErrSpawnBlocked)
		}
	}
	for i, h := range l.Hazards {
		if l.Exit.Intersects(h) {
			return fmt.Errorf("validate %s: hazard %d: %w", l.Name, i, ErrExitOnHazard)
		}
	}
	return nil
}

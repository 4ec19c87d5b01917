// Package leveldata describes sprint level geometry and parses it from TMX.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Rect is an axis-aligned rectangle in world pixels. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle is a boost pad pickup area.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// Level holds the static layout of one speed trial. Treat it as read-only
// once built; accessors return copies.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	Spawn     Point
	Exit      Rect
	Platforms []Rect
	Walls     []Rect
	Hazards   []Rect
	Boosts    []Circle
}

// Solids returns platforms followed by walls. Collision resolution walks this
// list in order and stops at the first hit, so the order is significant.
func (l *Level) Solids() []Rect {
	out := make([]Rect, 0, len(l.Platforms)+len(l.Walls))
	out = append(out, l.Platforms...)
	return append(out, l.Walls...)
}

// Clone returns a deep copy.
func (l *Level) Clone() *Level {
	c := *l
	c.Platforms = append([]Rect(nil), l.Platforms...)
	c.Walls = append([]Rect(nil), l.Walls...)
	c.Hazards = append([]Rect(nil), l.Hazards...)
	c.Boosts = append([]Circle(nil), l.Boosts...)
	return &c
}

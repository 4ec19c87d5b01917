package sim

import (
	"math"

	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Collision tags used in the resolv space.
const (
	TagSolid  = "solid"
	TagHazard = "hazard"
	TagExit   = "exit"
	TagProbe  = "probe"
)

const (
	spaceCellSize = 32
	spaceMargin   = 64
)

type axis int

const (
	axisX axis = iota
	axisY
)

// collider answers overlap queries against the static level. The resolv
// space is only a broadphase: cell membership narrows the candidates, then
// the exact strict AABB test picks the lowest level index. That keeps
// first-hit-wins in level order no matter how resolv orders its cells.
type collider struct {
	space   *resolv.Space
	offX    float64 // added to world X to get space X
	offY    float64
	solids  []leveldata.Rect
	hazards []leveldata.Rect
	exit    []leveldata.Rect
	probe   *resolv.Object
}

func newCollider(level *leveldata.Level, playerW, playerH float64) *collider {
	solids := level.Solids()

	minX, minY := 0.0, 0.0
	maxX, maxY := level.Width, level.Height
	extend := func(r leveldata.Rect) {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.W)
		maxY = math.Max(maxY, r.Y+r.H)
	}
	for _, r := range solids {
		extend(r)
	}
	for _, r := range level.Hazards {
		extend(r)
	}
	extend(level.Exit)
	extend(leveldata.Rect{X: level.Spawn.X, Y: level.Spawn.Y, W: playerW, H: playerH})

	c := &collider{
		offX:    spaceMargin - minX,
		offY:    spaceMargin - minY,
		solids:  solids,
		hazards: append([]leveldata.Rect(nil), level.Hazards...),
		exit:    []leveldata.Rect{level.Exit},
	}

	width := int(math.Ceil(maxX-minX)) + 2*spaceMargin
	height := int(math.Ceil(maxY-minY)) + 2*spaceMargin
	c.space = resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)

	for i, r := range c.solids {
		c.add(r, i, TagSolid)
	}
	for i, r := range c.hazards {
		c.add(r, i, TagHazard)
	}
	c.add(level.Exit, 0, TagExit)

	c.probe = resolv.NewObject(0, 0, playerW+2, playerH+2, TagProbe)
	c.probe.SetShape(resolv.NewRectangle(0, 0, playerW+2, playerH+2))
	c.space.Add(c.probe)

	return c
}

func (c *collider) add(r leveldata.Rect, index int, tag string) {
	obj := resolv.NewObject(r.X+c.offX, r.Y+c.offY, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = index
	c.space.Add(obj)
}

// first returns the lowest index among rects tagged tag that strictly
// overlap body.
func (c *collider) first(body leveldata.Rect, tag string, rects []leveldata.Rect) (int, bool) {
	// One pixel of slack on each side so resolv's cell rounding never drops
	// a rectangle the exact test would accept.
	c.probe.X = body.X + c.offX - 1
	c.probe.Y = body.Y + c.offY - 1
	c.probe.W = body.W + 2
	c.probe.H = body.H + 2
	c.probe.Update()

	check := c.probe.Check(0, 0, tag)
	if check == nil {
		return -1, false
	}

	best := -1
	for _, obj := range check.ObjectsByTags(tag) {
		i, ok := obj.Data.(int)
		if !ok || i < 0 || i >= len(rects) {
			continue
		}
		if (best < 0 || i < best) && body.Intersects(rects[i]) {
			best = i
		}
	}
	return best, best >= 0
}

// resolveAxis moves b by amount along one axis and pushes it out of the
// first overlapping solid. It reports whether a solid was hit.
func (c *collider) resolveAxis(b *Body, amount float64, a axis) bool {
	if a == axisX {
		b.X += amount
	} else {
		b.Y += amount
	}

	i, hit := c.first(b.Rect(), TagSolid, c.solids)
	if !hit {
		return false
	}

	s := c.solids[i]
	switch {
	case amount > 0 && a == axisX:
		b.X = s.X - b.W
	case amount > 0:
		b.Y = s.Y - b.H
	case amount < 0 && a == axisX:
		b.X = s.X + s.W
	case amount < 0:
		b.Y = s.Y + s.H
	}
	return true
}

func (c *collider) touchingHazard(body leveldata.Rect) bool {
	_, hit := c.first(body, TagHazard, c.hazards)
	return hit
}

func (c *collider) touchingExit(body leveldata.Rect) bool {
	_, hit := c.first(body, TagExit, c.exit)
	return hit
}

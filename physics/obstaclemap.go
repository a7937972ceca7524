package physics

import (
	"github.com/solarlune/resolv"
)

// spatial index cell size, in pixels
const cellSize = 16

// Tags attached to the resolv proxies, for debug rendering.
const (
	TagSolid = "solid"
	TagCloud = "cloud"
)

// ObstacleMap is a spatial index of static obstacles. Queries are answered
// by a resolv space holding one proxy object per obstacle; candidates from
// the broad phase are then filtered by exact mask-aware intersection.
//
// The map is borrowed by the actor for the duration of one simulation call
// and never retained.
type ObstacleMap struct {
	space   *resolv.Space
	probe   *resolv.Object
	proxies map[*Obstacle]*resolv.Object
}

// NewObstacleMap creates an empty map covering width×height pixels.
func NewObstacleMap(width, height int) *ObstacleMap {
	m := &ObstacleMap{
		space:   resolv.NewSpace(width, height, cellSize, cellSize),
		probe:   resolv.NewObject(0, 0, 1, 1, "probe"),
		proxies: make(map[*Obstacle]*resolv.Object),
	}
	m.space.Add(m.probe)
	return m
}

// Add indexes an obstacle.
func (m *ObstacleMap) Add(o *Obstacle) {
	tag := TagSolid
	if !o.IsSolid() {
		tag = TagCloud
	}
	x, y, w, h := o.Bounds()
	proxy := resolv.NewObject(float64(x), float64(y), float64(w), float64(h), tag)
	proxy.Data = o
	m.space.Add(proxy)
	m.proxies[o] = proxy
}

// Remove drops an obstacle from the index.
func (m *ObstacleMap) Remove(o *Obstacle) {
	if proxy, ok := m.proxies[o]; ok {
		m.space.Remove(proxy)
		delete(m.proxies, o)
	}
}

// Each visits every indexed obstacle.
func (m *ObstacleMap) Each(fn func(*Obstacle)) {
	for o := range m.proxies {
		fn(o)
	}
}

// candidatesAt positions the probe over a region and collects the
// obstacles whose solid part intersects it, honoring layers.
func (m *ObstacleMap) candidatesAt(x1, y1, x2, y2 int, layer Layer, out []*Obstacle) []*Obstacle {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	m.probe.X = float64(x1)
	m.probe.Y = float64(y1)
	m.probe.W = float64(x2 - x1 + 1)
	m.probe.H = float64(y2 - y1 + 1)
	m.probe.Update()

	check := m.probe.Check(0, 0, TagSolid, TagCloud)
	if check == nil {
		return out
	}
	for _, proxy := range check.Objects {
		o, ok := proxy.Data.(*Obstacle)
		if !ok {
			continue
		}
		if o.layer != LayerDefault && o.layer != layer {
			continue
		}
		if o.GotCollision(x1, y1, x2, y2) {
			out = append(out, o)
		}
	}
	return out
}

// BestObstacleAt returns the most relevant obstacle intersecting the
// region, or nil. Relevance depends on the movement mode: the surface
// nearest to the actor against local gravity wins, with solid obstacles
// breaking ties against clouds.
func (m *ObstacleMap) BestObstacleAt(x1, y1, x2, y2 int, mm MovMode, layer Layer) *Obstacle {
	var buf [8]*Obstacle
	candidates := m.candidatesAt(x1, y1, x2, y2, layer, buf[:0])
	if len(candidates) == 0 {
		return nil
	}

	dir := mm.groundDirection()
	cx, cy := (x1+x2)/2, (y1+y2)/2

	best := candidates[0]
	bestPos := best.GroundPosition(cx, cy, dir)
	for _, o := range candidates[1:] {
		pos := o.GroundPosition(cx, cy, dir)
		if better(pos, bestPos, dir) || (pos == bestPos && o.IsSolid() && !best.IsSolid()) {
			best, bestPos = o, pos
		}
	}
	return best
}

// better reports whether surface position a beats b for a ground
// direction: floor and right wall want the smallest coordinate, ceiling
// and left wall the largest.
func better(a, b int, dir GroundDirection) bool {
	if dir == GDDown || dir == GDRight {
		return a < b
	}
	return a > b
}

// ObstacleExists reports whether any obstacle covers the point.
func (m *ObstacleMap) ObstacleExists(x, y int, layer Layer) bool {
	var buf [8]*Obstacle
	return len(m.candidatesAt(x, y, x, y, layer, buf[:0])) > 0
}

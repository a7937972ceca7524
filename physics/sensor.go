package physics

import "image/color"

// Vec2 is a 2D point in world space, single precision.
type Vec2 struct {
	X, Y float32
}

// Point is an integer world-space position.
type Point struct {
	X, Y int
}

// Sensor is an axis-aligned line segment in sprite-local coordinates,
// immutable after construction except for its enabled flag. The head is
// the (x1, y1) endpoint and the tail the (x2, y2) endpoint, both rotated
// into world space by the movement mode.
type Sensor struct {
	x1, y1, x2, y2 int
	color          color.RGBA
	enabled        bool
}

// NewVerticalSensor creates a vertical sensor at local x spanning y1..y2.
func NewVerticalSensor(x, y1, y2 int, c color.RGBA) *Sensor {
	return &Sensor{x1: x, y1: y1, x2: x, y2: y2, color: c, enabled: true}
}

// NewHorizontalSensor creates a horizontal sensor at local y spanning
// x1..x2.
func NewHorizontalSensor(y, x1, x2 int, c color.RGBA) *Sensor {
	return &Sensor{x1: x1, y1: y, x2: x2, y2: y, color: c, enabled: true}
}

func (s *Sensor) X1() int { return s.x1 }
func (s *Sensor) Y1() int { return s.y1 }
func (s *Sensor) X2() int { return s.x2 }
func (s *Sensor) Y2() int { return s.y2 }

func (s *Sensor) Color() color.RGBA { return s.color }

func (s *Sensor) Enabled() bool { return s.enabled }

func (s *Sensor) SetEnabled(enabled bool) { s.enabled = enabled }

// Head is the (x1, y1) endpoint in world space.
func (s *Sensor) Head(position Vec2, mm MovMode) Point {
	x, y := mm.rotate(s.x1, s.y1)
	return Point{int(position.X) + x, int(position.Y) + y}
}

// Tail is the (x2, y2) endpoint in world space.
func (s *Sensor) Tail(position Vec2, mm MovMode) Point {
	x, y := mm.rotate(s.x2, s.y2)
	return Point{int(position.X) + x, int(position.Y) + y}
}

// WorldPos returns the segment endpoints in world space, ordered so that
// x1 <= x2 and y1 <= y2.
func (s *Sensor) WorldPos(position Vec2, mm MovMode) (x1, y1, x2, y2 int) {
	h := s.Head(position, mm)
	t := s.Tail(position, mm)
	x1, y1, x2, y2 = h.X, h.Y, t.X, t.Y
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return
}

// Check probes the obstacle map along the sensor segment. A disabled
// sensor reports nothing.
func (s *Sensor) Check(position Vec2, mm MovMode, layer Layer, m *ObstacleMap) *Obstacle {
	if !s.enabled || m == nil {
		return nil
	}
	x1, y1, x2, y2 := s.WorldPos(position, mm)
	return m.BestObstacleAt(x1, y1, x2, y2, mm, layer)
}

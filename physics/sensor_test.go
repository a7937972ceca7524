package physics

import (
	"image/color"
	"testing"
)

func TestSensorRotation(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	s := NewVerticalSensor(-9, 0, 20, white)
	pos := Vec2{100, 100}

	cases := []struct {
		mm         MovMode
		head, tail Point
	}{
		{MMFloor, Point{91, 100}, Point{91, 120}},
		{MMRightWall, Point{100, 109}, Point{120, 109}},
		{MMCeiling, Point{109, 100}, Point{109, 80}},
		{MMLeftWall, Point{100, 91}, Point{80, 91}},
	}
	for _, c := range cases {
		if got := s.Head(pos, c.mm); got != c.head {
			t.Errorf("%v head = %v, want %v", c.mm, got, c.head)
		}
		if got := s.Tail(pos, c.mm); got != c.tail {
			t.Errorf("%v tail = %v, want %v", c.mm, got, c.tail)
		}
	}
}

func TestSensorWorldPosOrdersEndpoints(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	s := NewVerticalSensor(-9, 0, 20, white)
	x1, y1, x2, y2 := s.WorldPos(Vec2{100, 100}, MMCeiling)
	if x1 > x2 || y1 > y2 {
		t.Fatalf("WorldPos endpoints not ordered: (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}
	if y1 != 80 || y2 != 100 || x1 != 109 {
		t.Fatalf("WorldPos = (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}
}

func TestSensorCheck(t *testing.T) {
	m := NewObstacleMap(640, 480)
	ground := NewObstacle(0, 200, 640, 80, true, LayerDefault)
	m.Add(ground)

	white := color.RGBA{255, 255, 255, 255}
	s := NewVerticalSensor(0, 0, 20, white)

	if got := s.Check(Vec2{100, 190}, MMFloor, LayerDefault, m); got != ground {
		t.Fatalf("sensor reaching into the ground should report it")
	}
	if got := s.Check(Vec2{100, 150}, MMFloor, LayerDefault, m); got != nil {
		t.Fatalf("sensor above the ground should report nothing")
	}

	s.SetEnabled(false)
	if got := s.Check(Vec2{100, 190}, MMFloor, LayerDefault, m); got != nil {
		t.Fatalf("disabled sensor should report nothing")
	}
}

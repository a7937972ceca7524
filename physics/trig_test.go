package physics

import "testing"

func TestCosTableCardinals(t *testing.T) {
	cases := []struct {
		angle int
		cos   float32
		sin   float32
	}{
		{0x00, 1, 0},
		{0x40, 0, -1},
		{0x80, -1, 0},
		{0xC0, 0, 1},
	}
	for _, c := range cases {
		if got := Cos(c.angle); absf(got-c.cos) > 1e-5 {
			t.Errorf("Cos(%#x) = %f, want %f", c.angle, got, c.cos)
		}
		if got := Sin(c.angle); absf(got-c.sin) > 1e-5 {
			t.Errorf("Sin(%#x) = %f, want %f", c.angle, got, c.sin)
		}
	}
}

func TestCosTableWrapsAround(t *testing.T) {
	if Cos(0x100) != Cos(0) {
		t.Errorf("Cos should wrap modulo 256")
	}
	if Sin(-0x40) != Cos(0) {
		t.Errorf("Sin(-0x40) should alias Cos(0)")
	}
}

func TestAngleDegreesRoundTrip(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		angle := DegreesToAngle(deg)
		back := AngleToDegrees(angle)
		diff := deg - back
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 && 360-diff > 2 {
			t.Fatalf("degrees %d -> angle %#x -> %d, outside quantization", deg, angle, back)
		}
	}
}

func TestAngleToDegreesKnownValues(t *testing.T) {
	cases := map[int]int{
		0x00: 0,
		0x40: 270, // left wall
		0x80: 180, // ceiling
		0xC0: 90,  // right wall
		0xE0: 45,
	}
	for angle, want := range cases {
		if got := AngleToDegrees(angle); got%360 != want {
			t.Errorf("AngleToDegrees(%#x) = %d, want %d", angle, got, want)
		}
	}
}

func TestDeltaAngle(t *testing.T) {
	cases := []struct {
		alpha, beta, want int
	}{
		{0, 0, 0},
		{0x10, 0x20, 0x10},
		{0xF0, 0x10, 0x20}, // across the wrap
		{0x00, 0x80, 0x80},
		{0x01, 0xFF, 0x02},
	}
	for _, c := range cases {
		if got := deltaAngle(c.alpha, c.beta); got != c.want {
			t.Errorf("deltaAngle(%#x, %#x) = %#x, want %#x", c.alpha, c.beta, got, c.want)
		}
		if got := deltaAngle(c.beta, c.alpha); got != c.want {
			t.Errorf("deltaAngle(%#x, %#x) = %#x, want %#x", c.beta, c.alpha, got, c.want)
		}
	}
}

func TestSlopeTable(t *testing.T) {
	cases := []struct {
		y, x, want int
	}{
		{0, 1, 0x00},
		{0, -1, 0x80},
		{1, 1, 0x20},
		{-1, 1, 0xE0},
		{-11, 0, 0xC0},
		{11, 0, 0x40},
		{1, 2, 0x13},
	}
	for _, c := range cases {
		if got := slopeAngle(c.y, c.x); got != c.want {
			t.Errorf("slopeAngle(%d, %d) = %#x, want %#x", c.y, c.x, got, c.want)
		}
	}

	// out-of-range displacements clamp to the table bounds
	if slopeAngle(40, 40) != slopeAngle(11, 11) {
		t.Errorf("slopeAngle should clamp large displacements")
	}
	if slopeAngle(-40, 3) != slopeAngle(-11, 3) {
		t.Errorf("slopeAngle should clamp negative displacements")
	}
}

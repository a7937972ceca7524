package physics

// angularTolerance is the largest angle jump the probe accepts before
// retrying with a narrower spread (~28°).
const angularTolerance = 0x14

// maxAngleJump rejects slope readings that differ from the current angle
// by more than ~52° when the two probes hit different obstacles.
const maxAngleJump = 0x25

// forceAngle sets the angle to a known value and refreshes everything
// derived from it.
func (pa *Actor) forceAngle(m *ObstacleMap, at *probeSet, angle int) {
	pa.angle = angle
	pa.updateMovmode()
	pa.updateSensors(m, at)
}

// setAutoAngle reacquires the slope angle from the ground and refreshes
// everything derived from it.
func (pa *Actor) setAutoAngle(m *ObstacleMap, at *probeSet) {
	pa.updateAngle(m, at)
	pa.updateMovmode()
	pa.updateSensors(m, at)
}

// distanceBetweenAngleSensors is measured on the normal pose regardless of
// the active one; varying the spread with the pose makes the probe
// inconsistent.
func (pa *Actor) distanceBetweenAngleSensors() int {
	return 1 - pa.bank[labelA][poseNormal].X1()
}

// updateAngle reacquires the slope angle with a two-point ground probe.
// The probe points sit hoff pixels to each side of the center along the
// current tangent; if the reading is unstable and the side sensors are
// free, the probe retries with a smaller spread for precision.
func (pa *Actor) updateAngle(m *ObstacleMap, at *probeSet) {
	sensor := pa.sensorA()
	sensorHeight := sensor.Y2() - sensor.Y1()
	searchBase := sensor.Y2() - 1
	maxIterations := sensorHeight * 3

	halfDist := pa.distanceBetweenAngleSensors() / 2
	hoff := halfDist + (1 - halfDist%2) // odd number
	minHoff := 1
	if pa.wasMidair {
		minHoff = 3
	}
	maxDelta := hoff * 2
	if maxDelta > slopeLimit {
		maxDelta = slopeLimit
	}
	currentAngle := pa.angle

	for {
		pa.angle = currentAngle // assume continuity
		dx, dy := pa.updateAngleStep(m, hoff, searchBase, maxIterations)
		hoff -= 2 // increase precision

		unstable := dx < -maxDelta || dx > maxDelta || dy < -maxDelta || dy > maxDelta ||
			deltaAngle(pa.angle, currentAngle) > angularTolerance
		if !(hoff >= minHoff && at.m == nil && at.n == nil && unstable) {
			return
		}
	}
}

// updateAngleStep runs one two-point probe pass and returns the accepted
// local displacement, or (0, 0) when no stable reading was found.
func (pa *Actor) updateAngleStep(m *ObstacleMap, hoff, searchBase, maxIterations int) (outDx, outDy int) {
	var xa, ya, xb, yb int
	foundA, foundB := false, false

	sin, cos := Sin(pa.angle), Cos(pa.angle)
	for i := 0; i < maxIterations && !(foundA && foundB); i++ {
		h := float32(searchBase + i)
		x := int(pa.position.X + h*sin + 0.5)
		y := int(pa.position.Y + h*cos + 0.5)
		if !foundA {
			xa = int(float32(x) - float32(hoff)*cos)
			ya = int(float32(y) + float32(hoff)*sin)
			gnd := m.BestObstacleAt(xa, ya, xa, ya, pa.movmode, pa.layer)
			foundA = pa.acceptGroundPoint(gnd, xa, ya)
		}
		if !foundB {
			xb = int(float32(x) + float32(hoff)*cos)
			yb = int(float32(y) - float32(hoff)*sin)
			gnd := m.BestObstacleAt(xb, yb, xb, yb, pa.movmode, pa.layer)
			foundB = pa.acceptGroundPoint(gnd, xb, yb)
		}
	}

	pa.angleSensor[0] = pa.position
	pa.angleSensor[1] = pa.position
	if !foundA || !foundB {
		return 0, 0
	}

	ga := m.BestObstacleAt(xa, ya, xa, ya, pa.movmode, pa.layer)
	gb := m.BestObstacleAt(xb, yb, xb, yb, pa.movmode, pa.layer)
	if ga == nil || gb == nil {
		return 0, 0
	}

	switch pa.movmode {
	case MMFloor:
		ya = ga.GroundPosition(xa, ya, GDDown)
		yb = gb.GroundPosition(xb, yb, GDDown)
	case MMLeftWall:
		xa = ga.GroundPosition(xa, ya, GDLeft)
		xb = gb.GroundPosition(xb, yb, GDLeft)
	case MMCeiling:
		ya = ga.GroundPosition(xa, ya, GDUp)
		yb = gb.GroundPosition(xb, yb, GDUp)
	case MMRightWall:
		xa = ga.GroundPosition(xa, ya, GDRight)
		xb = gb.GroundPosition(xb, yb, GDRight)
	}

	dx, dy := xb-xa, yb-ya
	if dx == 0 && dy == 0 {
		return 0, 0
	}

	ang := slopeAngle(dy, dx)
	// suppress discontinuities across obstacle boundaries
	if ga != gb && deltaAngle(ang, pa.angle) > maxAngleJump {
		return 0, 0
	}

	pa.angle = ang
	pa.angleSensor[0] = Vec2{float32(xa), float32(ya)}
	pa.angleSensor[1] = Vec2{float32(xb), float32(yb)}
	return dx, dy
}

// acceptGroundPoint reports whether a probe point rests on the obstacle:
// it must be solid, or a cloud whose surface is still within cloudOffset
// in the direction of the current mode.
func (pa *Actor) acceptGroundPoint(gnd *Obstacle, x, y int) bool {
	if gnd == nil {
		return false
	}
	if gnd.IsSolid() {
		return true
	}
	switch pa.movmode {
	case MMFloor:
		return y < gnd.GroundPosition(x, y, GDDown)+cloudOffset
	case MMCeiling:
		return y > gnd.GroundPosition(x, y, GDUp)-cloudOffset
	case MMLeftWall:
		return x > gnd.GroundPosition(x, y, GDLeft)-cloudOffset
	case MMRightWall:
		return x < gnd.GroundPosition(x, y, GDRight)+cloudOffset
	}
	return false
}

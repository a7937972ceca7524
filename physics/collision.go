package physics

import "math"

func floorv(v Vec2) Vec2 {
	return Vec2{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// handleRightWall resolves a hit on sensor N: the actor ran into a wall on
// its right side. Ground speed is cleared, the actor is repositioned so
// the sensor tail rests just outside the wall, and on non-floor modes the
// angle is reset (detaching to the floor). While grounded on the floor and
// holding into the wall, the actor starts pushing.
func (pa *Actor) handleRightWall(m *ObstacleMap, at *probeSet) {
	if at.n == nil {
		return
	}

	sensor := pa.sensorN()
	position := floorv(pa.position)
	tail := sensor.Tail(position, pa.movmode)
	localTailX := tail.X - int(position.X)
	localTailY := tail.Y - int(position.Y)
	resetAngle := false

	if pa.gsp > 0 {
		pa.gsp = 0
	}

	switch pa.movmode {
	case MMFloor:
		wall := at.n.GroundPosition(tail.X, tail.Y, GDRight)
		pa.position.X = float32(wall - localTailX - 1)
		pa.xsp = minf(pa.xsp, 0)
	case MMCeiling:
		wall := at.n.GroundPosition(tail.X, tail.Y, GDLeft)
		pa.position.X = float32(wall - localTailX + 1)
		pa.xsp = maxf(pa.xsp, 0)
		resetAngle = true
	case MMRightWall:
		wall := at.n.GroundPosition(tail.X, tail.Y, GDUp)
		pa.position.Y = float32(wall - localTailY - 1)
		pa.ysp = maxf(pa.ysp, 0)
		resetAngle = true
	case MMLeftWall:
		wall := at.n.GroundPosition(tail.X, tail.Y, GDDown)
		pa.position.Y = float32(wall - localTailY + 1)
		pa.ysp = minf(pa.ysp, 0)
		resetAngle = true
	}

	if resetAngle {
		pa.forceAngle(m, at, 0x0)
	} else {
		pa.updateSensors(m, at)
	}

	if !pa.midair && pa.movmode == MMFloor && pa.state != Rolling {
		if pa.input.Down(ButtonRight) {
			pa.state = Pushing
			pa.facingRight = true
		} else {
			pa.state = Stopped
		}
	}
}

// handleLeftWall mirrors handleRightWall for sensor M.
func (pa *Actor) handleLeftWall(m *ObstacleMap, at *probeSet) {
	if at.m == nil {
		return
	}

	sensor := pa.sensorM()
	position := floorv(pa.position)
	head := sensor.Head(position, pa.movmode)
	localHeadX := head.X - int(position.X)
	localHeadY := head.Y - int(position.Y)
	resetAngle := false

	if pa.gsp < 0 {
		pa.gsp = 0
	}

	switch pa.movmode {
	case MMFloor:
		wall := at.m.GroundPosition(head.X, head.Y, GDLeft)
		pa.position.X = float32(wall - localHeadX + 1)
		pa.xsp = maxf(pa.xsp, 0)
	case MMCeiling:
		wall := at.m.GroundPosition(head.X, head.Y, GDRight)
		pa.position.X = float32(wall - localHeadX - 1)
		pa.xsp = minf(pa.xsp, 0)
		resetAngle = true
	case MMRightWall:
		wall := at.m.GroundPosition(head.X, head.Y, GDDown)
		pa.position.Y = float32(wall - localHeadY - 1)
		pa.ysp = minf(pa.ysp, 0)
		resetAngle = true
	case MMLeftWall:
		wall := at.m.GroundPosition(head.X, head.Y, GDUp)
		pa.position.Y = float32(wall - localHeadY + 1)
		pa.ysp = maxf(pa.ysp, 0)
		resetAngle = true
	}

	if resetAngle {
		pa.forceAngle(m, at, 0x0)
	} else {
		pa.updateSensors(m, at)
	}

	if !pa.midair && pa.movmode == MMFloor && pa.state != Rolling {
		if pa.input.Down(ButtonLeft) {
			pa.state = Pushing
			pa.facingRight = false
		} else {
			pa.state = Stopped
		}
	}
}

// handleCeiling resolves a midair hit on the head sensors. Hitting a steep
// ceiling band reattaches the actor to the ceiling, converting airborne
// velocity into ground speed; otherwise the vertical speed is clamped and
// the actor is pushed down below the ceiling.
func (pa *Actor) handleCeiling(m *ObstacleMap, at *probeSet) {
	if !pa.midair || !pa.touchingCeiling {
		return
	}

	ceiling, ceilingSensor := pa.pickBestCeiling(at)
	if ceiling == nil {
		return
	}
	mustReattach := false

	// touching the ceiling for the first time?
	if pa.ysp < 0 {
		pa.forceAngle(m, at, 0x80)
		pa.setAutoAngle(m, at)

		if (pa.angle >= 0xA0 && pa.angle <= 0xBF) || (pa.angle >= 0x40 && pa.angle <= 0x5F) {
			mustReattach = !pa.midair
			if mustReattach {
				if absf(pa.xsp) > -pa.ysp {
					pa.gsp = -pa.xsp
				} else {
					pa.gsp = pa.ysp * -signf(Sin(pa.angle))
				}
				pa.xsp = 0
				pa.ysp = 0
				if pa.state != Rolling {
					pa.state = pa.walkingOrRunning()
				}
			}
		}
	}

	if !mustReattach {
		pa.ysp = maxf(pa.ysp, 0)
		pa.forceAngle(m, at, 0x0)

		position := floorv(pa.position)
		head := ceilingSensor.Head(position, pa.movmode)
		localHeadY := head.Y - int(position.Y)

		ceilingPosition := ceiling.GroundPosition(head.X, head.Y, GDUp)
		pa.position.Y = float32(ceilingPosition - localHeadY + 1)
		pa.updateSensors(m, at)
	}
}

// stickyPhysics keeps the actor glued to convex slopes: right after losing
// ground contact (without jumping or being launched) it probes a short
// band below the feet and, if ground is there, pulls the actor back down.
func (pa *Actor) stickyPhysics(m *ObstacleMap, at *probeSet) {
	fresh := !pa.wasMidair && pa.state != Jumping && pa.state != GettingHit &&
		pa.state != Springing && pa.state != Drowned && pa.state != Dead
	rolling := pa.state == Rolling && !pa.stickyLock

	if !pa.midair || !(fresh || rolling) {
		if !pa.midair && pa.state == Rolling {
			// undo the rolling lock
			pa.stickyLock = false
		}
		return
	}

	u := 4 // TODO: try a fraction of the sensor height as well

	if absf(pa.xsp) > pa.param.topspeed || pa.state == Rolling {
		const h = 12 // shouldn't be higher
		s := pa.sensorA()
		if pa.xsp > 0 {
			s = pa.sensorB()
		}
		_, _, x, y := s.WorldPos(pa.position, pa.movmode)
		for ; u < h; u++ {
			var hit bool
			switch pa.movmode {
			case MMFloor:
				hit = m.ObstacleExists(x, y+u, pa.layer)
			case MMRightWall:
				hit = m.ObstacleExists(y+u, x, pa.layer)
			case MMCeiling:
				hit = m.ObstacleExists(x, y-u, pa.layer)
			case MMLeftWall:
				hit = m.ObstacleExists(y-u, x, pa.layer)
			}
			if hit {
				break
			}
		}
	}

	var offset Vec2
	switch pa.movmode {
	case MMFloor:
		offset = Vec2{0, float32(u)}
	case MMCeiling:
		offset = Vec2{0, float32(-u)}
	case MMRightWall:
		offset = Vec2{float32(u), 0}
	case MMLeftWall:
		offset = Vec2{float32(-u), 0}
	}

	pa.position.X += offset.X
	pa.position.Y += offset.Y
	pa.midair = false // so the cloud filter treats the feet as grounded
	pa.setAutoAngle(m, at)

	// still in the air: undo the offset
	if pa.midair {
		pa.position.X -= offset.X
		pa.position.Y -= offset.Y
		pa.setAutoAngle(m, at)

		if pa.state == Rolling {
			pa.stickyLock = true
		}
	}
}

// stickToGround snaps the actor onto the best of the two foot probes and
// reacquires the slope angle.
func (pa *Actor) stickToGround(m *ObstacleMap, at *probeSet) {
	if pa.midair {
		return
	}
	launching := (pa.state == Jumping || pa.state == GettingHit || pa.state == Springing ||
		pa.state == Drowned || pa.state == Dead) && pa.ysp < 0
	if launching {
		return
	}

	ground, groundSensor := pa.pickBestGround(at)
	if ground == nil {
		return
	}

	offset := groundSensor.Y2() - 1

	px, py := int(pa.position.X), int(pa.position.Y)
	switch pa.movmode {
	case MMLeftWall:
		gnd := ground.GroundPosition(px-groundSensor.Y2(), py+groundSensor.X2(), GDLeft)
		pa.position.X = float32(gnd + offset)
	case MMCeiling:
		gnd := ground.GroundPosition(px-groundSensor.X2(), py-groundSensor.Y2(), GDUp)
		pa.position.Y = float32(gnd + offset)
	case MMRightWall:
		gnd := ground.GroundPosition(px+groundSensor.Y2(), py-groundSensor.X2(), GDRight)
		pa.position.X = float32(gnd - offset)
	case MMFloor:
		gnd := ground.GroundPosition(px+groundSensor.X2(), py+groundSensor.Y2(), GDDown)
		pa.position.Y = float32(gnd - offset)
	}

	// additional adjustments when first touching the ground
	if pa.wasMidair && pa.movmode == MMFloor {
		// fix the speed; reacquisition of the ground comes next
		pa.gsp = pa.xsp

		if pa.state == Rolling {
			// unroll after rolling midair
			if pa.midairTimer >= 0.2 && !pa.input.Down(ButtonDown) {
				pa.state = pa.walkingOrRunning()
				if !nearlyZero(pa.gsp) {
					pa.facingRight = pa.gsp > 0
				}
			}
		} else {
			// animation fix, e.g. when jumping near edges
			pa.state = pa.walkingOrRunning()
		}
	}

	pa.setAutoAngle(m, at)
}

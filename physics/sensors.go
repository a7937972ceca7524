package physics

// cloudOffset is the tolerance, in pixels, under which a descending foot
// sensor still counts as being on top of a cloud.
const cloudOffset = 12

// probeSet is the result of one sensor read: the best obstacle under each
// of the six movement sensors, after filtering.
type probeSet struct {
	a, b, c, d, m, n *Obstacle
}

// updateSensors probes the obstacle map with the six movement sensors and
// refreshes the midair / touching-ceiling flags. Call it whenever the
// position or the angle changes.
func (pa *Actor) updateSensors(m *ObstacleMap, at *probeSet) {
	a := pa.sensorA()
	b := pa.sensorB()
	c := pa.sensorC()
	d := pa.sensorD()
	mm := pa.sensorM()
	n := pa.sensorN()

	// skip sensors that cannot cause a transition
	if !pa.midair {
		a.SetEnabled(true)
		b.SetEnabled(true)
		c.SetEnabled(false)
		d.SetEnabled(false)
		mm.SetEnabled(pa.gsp < 0)
		n.SetEnabled(pa.gsp > 0)
	} else {
		a.SetEnabled(pa.ysp >= 0)
		b.SetEnabled(pa.ysp >= 0)
		c.SetEnabled(pa.ysp < 0)
		d.SetEnabled(pa.ysp < 0)
		mm.SetEnabled(pa.xsp < 0)
		n.SetEnabled(pa.xsp > 0)
	}

	at.a = a.Check(pa.position, pa.movmode, pa.layer, m)
	at.b = b.Check(pa.position, pa.movmode, pa.layer, m)
	at.c = c.Check(pa.position, pa.movmode, pa.layer, m)
	at.d = d.Check(pa.position, pa.movmode, pa.layer, m)
	at.m = mm.Check(pa.position, pa.movmode, pa.layer, m)
	at.n = n.Check(pa.position, pa.movmode, pa.layer, m)

	// C, D, M, N: ignore clouds
	at.c = solidOnly(at.c)
	at.d = solidOnly(at.d)
	at.m = solidOnly(at.m)
	at.n = solidOnly(at.n)

	// A, B: ignore clouds when moving mostly upwards
	if pa.ysp < 0 && -pa.ysp > absf(pa.xsp) {
		at.a = solidOnly(at.a)
		at.b = solidOnly(at.b)
	}

	// A, B: a cloud counts only while the sensor tail is inside it and,
	// when falling onto it, while the tail is still near its top
	at.a = pa.filterCloud(at.a, a)
	at.b = pa.filterCloud(at.b, b)

	// two different clouds under the feet: keep the higher one, so the
	// actor does not spuriously attach to the lower cloud
	if at.a != nil && at.b != nil && at.a != at.b && !at.a.IsSolid() && !at.b.IsSolid() {
		if pa.movmode == MMFloor {
			tailA := a.Tail(pa.position, pa.movmode)
			tailB := b.Tail(pa.position, pa.movmode)
			gndA := at.a.GroundPosition(tailA.X, tailA.Y, GDDown)
			gndB := at.b.GroundPosition(tailB.X, tailB.Y, GDDown)
			if diff := gndA - gndB; diff > 8 || diff < -8 {
				if gndA < gndB {
					at.b = nil
				} else {
					at.a = nil
				}
			}
		}
	}

	pa.midair = at.a == nil && at.b == nil
	pa.touchingCeiling = at.c != nil || at.d != nil
}

func solidOnly(o *Obstacle) *Obstacle {
	if o != nil && o.IsSolid() {
		return o
	}
	return nil
}

// filterCloud drops a cloud obstacle the sprite has already fallen
// through.
func (pa *Actor) filterCloud(o *Obstacle, s *Sensor) *Obstacle {
	if o == nil || o.IsSolid() {
		return o
	}
	tail := s.Tail(pa.position, pa.movmode)
	if !o.PointCollision(tail.X, tail.Y) {
		return nil
	}
	if pa.midair && pa.movmode == MMFloor && pa.angle == 0 {
		ygnd := o.GroundPosition(tail.X, tail.Y, GDDown)
		if tail.Y >= ygnd+cloudOffset {
			return nil
		}
	}
	return o
}

// pickBestGround chooses between the two foot probes: the obstacle whose
// surface sits higher relative to the actor wins.
func (pa *Actor) pickBestGround(at *probeSet) (*Obstacle, *Sensor) {
	a, b := at.a, at.b
	sa, sb := pa.sensorA(), pa.sensorB()

	if a == nil {
		return b, sb
	}
	if b == nil {
		return a, sa
	}

	px, py := int(pa.position.X), int(pa.position.Y)
	var ha, hb int
	switch pa.movmode {
	case MMFloor:
		ha = a.GroundPosition(px+sa.X2(), py+sa.Y2(), GDDown)
		hb = b.GroundPosition(px+sb.X2(), py+sb.Y2(), GDDown)
		if ha < hb {
			return a, sa
		}
	case MMLeftWall:
		ha = a.GroundPosition(px-sa.Y2(), py+sa.X2(), GDLeft)
		hb = b.GroundPosition(px-sb.Y2(), py+sb.X2(), GDLeft)
		if ha >= hb {
			return a, sa
		}
	case MMCeiling:
		ha = a.GroundPosition(px-sa.X2(), py-sa.Y2(), GDUp)
		hb = b.GroundPosition(px-sb.X2(), py-sb.Y2(), GDUp)
		if ha >= hb {
			return a, sa
		}
	case MMRightWall:
		ha = a.GroundPosition(px+sa.Y2(), py-sa.X2(), GDRight)
		hb = b.GroundPosition(px+sb.Y2(), py-sb.X2(), GDRight)
		if ha < hb {
			return a, sa
		}
	}
	return b, sb
}

// pickBestCeiling mirrors pickBestGround for the two head probes.
func (pa *Actor) pickBestCeiling(at *probeSet) (*Obstacle, *Sensor) {
	c, d := at.c, at.d
	sc, sd := pa.sensorC(), pa.sensorD()

	if c == nil {
		return d, sd
	}
	if d == nil {
		return c, sc
	}

	px, py := int(pa.position.X), int(pa.position.Y)
	var hc, hd int
	switch pa.movmode {
	case MMFloor:
		hc = c.GroundPosition(px+sc.X1(), py+sc.Y1(), GDUp)
		hd = d.GroundPosition(px+sd.X1(), py+sd.Y1(), GDUp)
		if hc >= hd {
			return c, sc
		}
	case MMLeftWall:
		hc = c.GroundPosition(px-sc.Y1(), py+sc.X1(), GDRight)
		hd = d.GroundPosition(px-sd.Y1(), py+sd.X1(), GDRight)
		if hc < hd {
			return c, sc
		}
	case MMCeiling:
		hc = c.GroundPosition(px-sc.X1(), py-sc.Y1(), GDDown)
		hd = d.GroundPosition(px-sd.X1(), py-sd.Y1(), GDDown)
		if hc < hd {
			return c, sc
		}
	case MMRightWall:
		hc = c.GroundPosition(px+sc.Y1(), py-sc.X1(), GDLeft)
		hd = d.GroundPosition(px+sd.Y1(), py-sd.X1(), GDLeft)
		if hc >= hd {
			return c, sc
		}
	}
	return d, sd
}

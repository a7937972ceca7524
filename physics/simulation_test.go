package physics

import "testing"

// flatWorld builds a wide solid floor whose surface is at y = 200. An
// actor standing on it rests with its center at y = 181.
func flatWorld() *ObstacleMap {
	m := NewObstacleMap(2048, 1024)
	m.Add(NewObstacle(0, 200, 2048, 100, true, LayerDefault))
	return m
}

const restY = 181 // 200 - (20 - 1)

func step(pa *Actor, m *ObstacleMap, hold ...Button) {
	for _, b := range hold {
		pa.input.SimulateDown(b)
	}
	pa.Update(m, FixedTimestep)
}

func TestActorAtRestStaysAtRest(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})

	step(pa, m)
	if pa.IsMidair() {
		t.Fatalf("actor placed on the ground should be grounded")
	}
	settled := pa.Position()

	for i := 0; i < 120; i++ {
		step(pa, m)
	}
	if pa.Position() != settled {
		t.Fatalf("position drifted from %v to %v with no input", settled, pa.Position())
	}
	if pa.Gsp() != 0 || pa.Xsp() != 0 {
		t.Fatalf("speeds should stay zero at rest")
	}
}

func TestStoppedBecomesWaiting(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})

	for i := 0; i < 60; i++ {
		step(pa, m)
	}
	if pa.State() != Stopped {
		t.Fatalf("state = %v, want stopped before the wait time", pa.State())
	}

	for i := 0; i < 3*60; i++ {
		step(pa, m)
	}
	if pa.State() != Waiting {
		t.Fatalf("state = %v, want waiting after %f seconds", pa.State(), pa.Waittime())
	}
}

func TestWalkingAcceleratesToTopSpeed(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	startX := pa.Position().X

	for i := 0; i < 60; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.State() != Walking {
		t.Fatalf("state = %v, want walking below top speed", pa.State())
	}
	if pa.Gsp() <= 0 {
		t.Fatalf("gsp = %f, want positive", pa.Gsp())
	}
	if pa.Position().X <= startX {
		t.Fatalf("actor should have moved right")
	}
	if !pa.IsFacingRight() {
		t.Fatalf("actor should face right")
	}

	for i := 0; i < 180; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.State() != Running {
		t.Fatalf("state = %v, want running at top speed", pa.State())
	}
	if pa.Gsp() != pa.Topspeed() {
		t.Fatalf("gsp = %f, want topspeed %f", pa.Gsp(), pa.Topspeed())
	}
	if pa.Xsp() != pa.Gsp() {
		t.Fatalf("on flat ground xsp (%f) equals gsp (%f)", pa.Xsp(), pa.Gsp())
	}
}

func TestGroundSpeedIsCapped(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	pa.SetGsp(10000)
	step(pa, m, ButtonRight)
	if pa.Gsp() > pa.Capspeed() {
		t.Fatalf("gsp = %f exceeds capspeed %f", pa.Gsp(), pa.Capspeed())
	}
}

func TestJumpAndShortHop(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	step(pa, m, ButtonFire1)
	if pa.State() != Jumping {
		t.Fatalf("state = %v, want jumping", pa.State())
	}
	if !pa.IsMidair() {
		t.Fatalf("jumping actor should be midair")
	}
	if pa.Ysp() != pa.Jmp() {
		t.Fatalf("ysp = %f, want jmp %f", pa.Ysp(), pa.Jmp())
	}

	// releasing the button clamps the rise to jmprel
	step(pa, m)
	if pa.Ysp() != pa.Jmprel() {
		t.Fatalf("ysp = %f, want jmprel %f after release", pa.Ysp(), pa.Jmprel())
	}
}

func TestShortHopIsLowerThanFullJump(t *testing.T) {
	apex := func(holdFrames int) float32 {
		m := flatWorld()
		pa := New(Vec2{100, restY})
		step(pa, m)

		top := pa.Position().Y
		for i := 0; i < 90; i++ {
			if i < holdFrames {
				step(pa, m, ButtonFire1)
			} else {
				step(pa, m)
			}
			if y := pa.Position().Y; y < top {
				top = y
			}
		}
		return top
	}

	short := apex(3)
	full := apex(60)
	if short <= full {
		t.Fatalf("short hop apex %f should be below full jump apex %f", short, full)
	}
}

func TestJumpLandsBackAndWalksOff(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)
	step(pa, m, ButtonFire1)

	landed := false
	for i := 0; i < 180; i++ {
		step(pa, m, ButtonFire1)
		if !pa.IsMidair() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("actor never landed")
	}
	// the landing snap uses the jump/roll foot sensor, which is one pixel
	// shorter than the normal one
	if want := float32(restY + pa.RollDelta()); pa.Position().Y != want {
		t.Fatalf("landing y = %f, want %f", pa.Position().Y, want)
	}
	if pa.State() == Jumping {
		t.Fatalf("state should leave jumping on landing")
	}
}

func TestRolling(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	for i := 0; i < 40; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.Gsp() < pa.Rollthreshold() {
		t.Fatalf("gsp = %f, not fast enough to roll", pa.Gsp())
	}

	step(pa, m, ButtonDown)
	if pa.State() != Rolling {
		t.Fatalf("state = %v, want rolling", pa.State())
	}

	// releasing DOWN does not unroll until the speed drops
	for pa.Gsp() >= pa.Unrollthreshold()+10 {
		step(pa, m)
		if pa.State() != Rolling {
			t.Fatalf("state = %v at gsp %f, must stay rolling", pa.State(), pa.Gsp())
		}
	}
	for i := 0; i < 600 && pa.State() == Rolling; i++ {
		step(pa, m)
	}
	if pa.State() != Stopped && pa.State() != Waiting {
		t.Fatalf("state = %v, want stopped after unrolling", pa.State())
	}
	if absf(pa.Gsp()) >= pa.Unrollthreshold() {
		t.Fatalf("gsp = %f, should have dropped below the unroll threshold", pa.Gsp())
	}
}

func TestDuckingChargeAndRelease(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	step(pa, m, ButtonDown)
	if pa.State() != Ducking {
		t.Fatalf("state = %v, want ducking", pa.State())
	}

	step(pa, m, ButtonDown, ButtonFire1)
	if pa.State() != Charging {
		t.Fatalf("state = %v, want charging", pa.State())
	}
	if pa.ChargeIntensity() != 0.25 {
		t.Fatalf("intensity = %f, want 0.25 after one rev", pa.ChargeIntensity())
	}

	// mash to full intensity
	for i := 0; i < 4; i++ {
		step(pa, m, ButtonDown)
		step(pa, m, ButtonDown, ButtonFire1)
	}
	if pa.ChargeIntensity() != 1 {
		t.Fatalf("intensity = %f, want saturation at 1", pa.ChargeIntensity())
	}
	if pa.Gsp() != 0 {
		t.Fatalf("gsp = %f, must stay zero while charging", pa.Gsp())
	}

	// release
	step(pa, m)
	if pa.State() != Rolling {
		t.Fatalf("state = %v, want rolling after release", pa.State())
	}
	if pa.Gsp() < 0.67*pa.Chrg() || pa.Gsp() > pa.Chrg() {
		t.Fatalf("gsp = %f, want within (0.67..1)*chrg", pa.Gsp())
	}
	if !pa.IsFacingRight() {
		t.Fatalf("release direction should follow facing")
	}
	if pa.ChargeIntensity() != 0 {
		t.Fatalf("intensity should reset on release")
	}
}

func TestChargingRequiresEdgeAndDown(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	// FIRE1 held from a previous frame is not an edge, even after the
	// resulting jump ends and the actor ducks
	step(pa, m, ButtonFire1)
	for i := 0; i < 200; i++ {
		step(pa, m, ButtonDown, ButtonFire1)
		if pa.State() == Charging {
			t.Fatalf("charging requires a fresh FIRE1 press while ducking")
		}
	}
}

func TestWalkIntoWallStartsPushing(t *testing.T) {
	m := flatWorld()
	m.Add(NewObstacle(500, 100, 60, 100, true, LayerDefault))
	pa := New(Vec2{300, restY})

	for i := 0; i < 300; i++ {
		step(pa, m, ButtonRight)
	}

	if pa.State() != Pushing {
		t.Fatalf("state = %v, want pushing", pa.State())
	}
	if !pa.IsFacingRight() {
		t.Fatalf("pushing should face the wall")
	}
	if pa.Gsp() >= pa.Walkthreshold() {
		t.Fatalf("gsp = %f, the wall should keep resetting it", pa.Gsp())
	}
	if x := pa.Position().X; x < 488 || x > 491 {
		t.Fatalf("x = %f, want just outside the wall near 489", x)
	}
}

func TestLedgeBalancing(t *testing.T) {
	m := NewObstacleMap(2048, 1024)
	m.Add(NewObstacle(0, 200, 400, 100, true, LayerDefault))
	pa := New(Vec2{403, restY})

	for i := 0; i < 5; i++ {
		step(pa, m)
	}
	if pa.State() != LedgeBalancing {
		t.Fatalf("state = %v, want ledge balancing", pa.State())
	}
	if !pa.IsFacingRight() {
		t.Fatalf("ledge on the right foot gap faces right")
	}
}

func TestCloudCatchesOnlyFromAbove(t *testing.T) {
	m := NewObstacleMap(2048, 1024)
	m.Add(NewObstacle(0, 200, 2048, 16, false, LayerDefault))

	// from above: land on the cloud
	pa := New(Vec2{100, 100})
	for i := 0; i < 300 && pa.IsMidair(); i++ {
		step(pa, m)
	}
	if pa.IsMidair() {
		t.Fatalf("actor should land on the cloud")
	}
	if pa.Position().Y != restY {
		t.Fatalf("landing y = %f, want %d", pa.Position().Y, restY)
	}

	// from below: jump straight through, then land back on top
	pa = New(Vec2{100, 260})
	pa.SetYsp(-390)
	rising := true
	for i := 0; i < 300; i++ {
		step(pa, m)
		if pa.Ysp() < 0 {
			if !pa.IsMidair() {
				t.Fatalf("actor caught the cloud while jumping through it")
			}
			if pa.IsTouchingCeiling() {
				t.Fatalf("clouds never act as ceilings")
			}
		} else {
			rising = false
		}
		if !pa.IsMidair() {
			break
		}
	}
	if rising || pa.IsMidair() {
		t.Fatalf("actor should have passed the apex and landed, midair=%v", pa.IsMidair())
	}
	if pa.Position().Y != restY {
		t.Fatalf("final y = %f, want %d on top of the cloud", pa.Position().Y, restY)
	}
}

func TestAirdragBoundaries(t *testing.T) {
	m := NewObstacleMap(64, 64) // empty: actor stays midair

	// airdrag = 1: identity
	pa := New(Vec2{100, 100})
	pa.SetAirdrag(1)
	pa.SetXsp(100)
	pa.SetYsp(-100)
	pa.Update(m, FixedTimestep)
	if pa.Xsp() != 100 {
		t.Fatalf("xsp = %f, airdrag 1 must not decay", pa.Xsp())
	}

	// airdrag = 0: xsp zeroed on the first qualifying tick
	pa = New(Vec2{100, 100})
	pa.SetAirdrag(0)
	pa.SetXsp(100)
	pa.SetYsp(-100)
	pa.Update(m, FixedTimestep)
	if pa.Xsp() != 0 {
		t.Fatalf("xsp = %f, airdrag 0 must zero it", pa.Xsp())
	}

	// default airdrag decays gradually
	pa = New(Vec2{100, 100})
	pa.SetXsp(100)
	pa.SetYsp(-100)
	pa.Update(m, FixedTimestep)
	if pa.Xsp() <= 0 || pa.Xsp() >= 100 {
		t.Fatalf("xsp = %f, want gradual decay", pa.Xsp())
	}
}

func TestFreefallClampsToTopYSpeed(t *testing.T) {
	m := NewObstacleMap(64, 64)
	pa := New(Vec2{100, 100})

	for i := 0; i < 600; i++ {
		pa.Update(m, FixedTimestep)
	}
	if pa.Ysp() != pa.Topyspeed() {
		t.Fatalf("ysp = %f, want clamp at topyspeed %f", pa.Ysp(), pa.Topyspeed())
	}
}

func TestSlopeAngleAndSlideDown(t *testing.T) {
	m := NewObstacleMap(2048, 1024)
	m.Add(NewObstacle(0, 320, 320, 64, true, LayerDefault))
	// 45° ramp rising to the right of the flat ground
	mask := make([]int, 64)
	for i := range mask {
		mask[i] = i + 1
	}
	m.Add(NewMaskedObstacle(320, 256, 64, 64, true, LayerDefault, mask))

	pa := New(Vec2{352, 259})
	step(pa, m)
	if pa.IsMidair() {
		t.Fatalf("actor should stand on the ramp")
	}
	if pa.Angle() != 45 {
		t.Fatalf("angle = %d°, want 45 on a 45° ramp", pa.Angle())
	}
	if pa.Movmode() != MMFloor {
		t.Fatalf("movmode = %v, 45° is still floor", pa.Movmode())
	}

	// the slope factor pulls the actor back downhill
	for i := 0; i < 30; i++ {
		step(pa, m)
	}
	if pa.Gsp() >= 0 {
		t.Fatalf("gsp = %f, want negative (sliding downhill)", pa.Gsp())
	}
}

func TestHorizontalLockMasksInput(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	pa.LockHorizontallyFor(0.5)
	for i := 0; i < 20; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.Gsp() != 0 {
		t.Fatalf("gsp = %f, locked input must not accelerate", pa.Gsp())
	}

	for i := 0; i < 20; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.Gsp() <= 0 {
		t.Fatalf("gsp = %f, lock should have expired", pa.Gsp())
	}
}

func TestGettingHitIgnoresInputAndLandsStopped(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	pa.Hit()
	pa.SetXsp(120)
	pa.SetYsp(-240)
	pa.midair = true
	pa.position.Y -= 10

	for i := 0; i < 300 && pa.State() == GettingHit; i++ {
		step(pa, m, ButtonRight)
	}
	if pa.State() != Stopped {
		t.Fatalf("state = %v, want stopped after landing from a hit", pa.State())
	}
	if pa.Gsp() != 0 || pa.Xsp() != 0 {
		t.Fatalf("speeds should be cleared on landing from a hit")
	}
}

func TestBreathingCountsDown(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	pa.Breathe()
	step(pa, m)
	if pa.State() != Breathing {
		t.Fatalf("state = %v, want breathing", pa.State())
	}
	for i := 0; i < 60; i++ {
		step(pa, m)
	}
	if pa.State() == Breathing {
		t.Fatalf("breathing should end after its timer")
	}
}

func TestWinningPoseEntersWinning(t *testing.T) {
	m := flatWorld()
	pa := New(Vec2{100, restY})
	step(pa, m)

	pa.EnableWinningPose()
	for i := 0; i < 120; i++ {
		step(pa, m)
	}
	if pa.State() != Winning {
		t.Fatalf("state = %v, want winning once stopped on the ground", pa.State())
	}
}

func TestInvalidMidairStatesAreRewritten(t *testing.T) {
	m := NewObstacleMap(64, 64)
	pa := New(Vec2{100, 100})

	pa.state = Ducking
	pa.Update(m, FixedTimestep)
	if s := pa.State(); s == Ducking || s == Stopped || s == Waiting || s == Pushing || s == LookingUp {
		t.Fatalf("state = %v, grounded-only states must not survive midair", s)
	}
}

func TestMovmodeMatchesAngleAfterEveryTick(t *testing.T) {
	m := NewObstacleMap(2048, 1024)
	m.Add(NewObstacle(0, 320, 320, 64, true, LayerDefault))
	mask := make([]int, 64)
	for i := range mask {
		mask[i] = i + 1
	}
	m.Add(NewMaskedObstacle(320, 256, 64, 64, true, LayerDefault, mask))

	pa := New(Vec2{60, 301})
	for i := 0; i < 600; i++ {
		step(pa, m, ButtonRight)

		a := pa.angle
		mm := pa.Movmode()
		switch {
		case a < 0x20 || a > 0xE0:
			if mm != MMFloor {
				t.Fatalf("angle %#x: movmode = %v, want floor", a, mm)
			}
		case a > 0x20 && a < 0x60:
			if mm != MMLeftWall {
				t.Fatalf("angle %#x: movmode = %v, want leftwall", a, mm)
			}
		case a > 0x60 && a < 0xA0:
			if mm != MMCeiling {
				t.Fatalf("angle %#x: movmode = %v, want ceiling", a, mm)
			}
		case a > 0xA0 && a < 0xE0:
			if mm != MMRightWall {
				t.Fatalf("angle %#x: movmode = %v, want rightwall", a, mm)
			}
		}

		if !pa.IsMidair() && absf(pa.Gsp()) > pa.Capspeed() {
			t.Fatalf("gsp %f exceeds capspeed while grounded", pa.Gsp())
		}
	}
}

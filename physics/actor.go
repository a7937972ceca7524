// Package physics implements the deterministic platformer physics of a
// single movable actor over a static obstacle map: slope-following ground
// motion, loops and wall/ceiling attachment, jumping, rolling,
// charge-and-release and semi-solid platforms, all driven by seven
// line-segment sensors and a fixed-timestep simulation.
//
// The package is engine-free; rendering and input polling live in the ECS
// layers above it.
package physics

import "image/color"

// sensor pose families. The sensor coordinates change with the state of
// the actor; instead of mutating them, three immutable sets are kept and
// selected per frame.
type pose int

const (
	poseNormal pose = iota
	poseAirborne
	poseJumpRoll
	poseCount
)

// sensor labels:
//
//	                                    U
//	A (vertical; left bottom)          ---
//	B (vertical; right bottom)       C | | D
//	C (vertical; left top)           M -.- N
//	D (vertical; right top)          A | | B
//	M (horizontal; left middle)      ^^^^^^^
//	N (horizontal; right middle)      ground
//	U (horizontal; up "smash" probe)
type sensorLabel int

const (
	labelA sensorLabel = iota
	labelB
	labelC
	labelD
	labelM
	labelN
	labelU
	sensorCount
)

// Actor is the single controllable physics body. It owns its sensor bank
// and input device; the obstacle map is borrowed per update call.
type Actor struct {
	position Vec2 // center of the sprite
	xsp      float32
	ysp      float32
	gsp      float32 // signed speed along the surface tangent

	angle   int // 0-255, clockwise; 0 = floor
	movmode MovMode
	state   State
	layer   Layer

	midair          bool
	wasMidair       bool
	facingRight     bool
	touchingCeiling bool
	insideWall      bool
	winningPose     bool
	stickyLock      bool

	hlockTimer    float32
	jumpLockTimer float32
	waitTimer     float32
	midairTimer   float32
	breatheTimer  float32

	chargeIntensity    float32
	airdragCoefficient [2]float32
	param              modelParams

	input *Input
	bank  [sensorCount][poseCount]*Sensor

	// last accepted angle probe points, for debug rendering
	angleSensor [2]Vec2

	// fixed timestep bookkeeping
	referenceTime float32
	fixedTime     float32
}

// New creates an actor at rest, midair, at the given sprite center.
func New(position Vec2) *Actor {
	pa := &Actor{
		position:    position,
		movmode:     MMFloor,
		state:       Stopped,
		layer:       LayerDefault,
		midair:      true,
		facingRight: true,
		input:       NewInput(),
	}
	pa.airdragCoefficient = [2]float32{0, 1}
	pa.ResetModelParameters()

	green := color.RGBA{0, 255, 0, 255}
	yellow := color.RGBA{255, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	magenta := color.RGBA{255, 64, 255, 255}
	white := color.RGBA{255, 255, 255, 255}

	pa.bank[labelA][poseNormal] = NewVerticalSensor(-9, 0, 20, green)
	pa.bank[labelB][poseNormal] = NewVerticalSensor(9, 0, 20, yellow)
	pa.bank[labelC][poseNormal] = NewVerticalSensor(-9, -24, 0, green)
	pa.bank[labelD][poseNormal] = NewVerticalSensor(9, -24, 0, yellow)
	pa.bank[labelM][poseNormal] = NewHorizontalSensor(4, -10, 0, red)
	pa.bank[labelN][poseNormal] = NewHorizontalSensor(4, 0, 10, magenta)
	pa.bank[labelU][poseNormal] = NewHorizontalSensor(-4, 0, 0, white)

	pa.bank[labelA][poseAirborne] = NewVerticalSensor(-9, 0, 20, green)
	pa.bank[labelB][poseAirborne] = NewVerticalSensor(9, 0, 20, yellow)
	pa.bank[labelC][poseAirborne] = NewVerticalSensor(-9, -24, 0, green)
	pa.bank[labelD][poseAirborne] = NewVerticalSensor(9, -24, 0, yellow)
	pa.bank[labelM][poseAirborne] = NewHorizontalSensor(0, -11, 0, red)
	pa.bank[labelN][poseAirborne] = NewHorizontalSensor(0, 0, 11, magenta)
	pa.bank[labelU][poseAirborne] = NewHorizontalSensor(-4, 0, 0, white)

	pa.bank[labelA][poseJumpRoll] = NewVerticalSensor(-5, 0, 19, green)
	pa.bank[labelB][poseJumpRoll] = NewVerticalSensor(5, 0, 19, yellow)
	pa.bank[labelC][poseJumpRoll] = NewVerticalSensor(-5, -10, 0, green)
	pa.bank[labelD][poseJumpRoll] = NewVerticalSensor(5, -10, 0, yellow)
	pa.bank[labelM][poseJumpRoll] = NewHorizontalSensor(0, -11, 0, red)
	pa.bank[labelN][poseJumpRoll] = NewHorizontalSensor(0, 0, 11, magenta)
	pa.bank[labelU][poseJumpRoll] = NewHorizontalSensor(-4, 0, 0, white)

	return pa
}

// activePose selects the sensor set for the current state.
func (pa *Actor) activePose() pose {
	if pa.state == Jumping || pa.state == Rolling {
		return poseJumpRoll
	}
	if pa.midair || pa.state == Springing {
		return poseAirborne
	}
	return poseNormal
}

func (pa *Actor) sensor(l sensorLabel) *Sensor {
	return pa.bank[l][pa.activePose()]
}

func (pa *Actor) sensorA() *Sensor { return pa.sensor(labelA) }
func (pa *Actor) sensorB() *Sensor { return pa.sensor(labelB) }
func (pa *Actor) sensorC() *Sensor { return pa.sensor(labelC) }
func (pa *Actor) sensorD() *Sensor { return pa.sensor(labelD) }
func (pa *Actor) sensorM() *Sensor { return pa.sensor(labelM) }
func (pa *Actor) sensorN() *Sensor { return pa.sensor(labelN) }
func (pa *Actor) sensorU() *Sensor { return pa.sensor(labelU) }

// Update drives one outer frame with a real frame delta, in seconds. At 60
// FPS the simulation runs with a fixed 1/60 s step and is frame-exact;
// under jank it degrades to the real dt to avoid slow motion.
func (pa *Actor) Update(m *ObstacleMap, dt float32) {
	// inside a solid brick, possibly smashed?
	atU := pa.sensorU().Check(pa.position, pa.movmode, pa.layer, m)
	pa.insideWall = atU != nil && atU.IsSolid()

	pa.referenceTime += dt
	if pa.referenceTime <= pa.fixedTime+FixedTimestep {
		pa.runSimulation(m, FixedTimestep)
		pa.fixedTime += FixedTimestep
	} else {
		// prevent jittering at lower fps rates
		pa.runSimulation(m, dt)
		pa.fixedTime = pa.referenceTime
	}

	pa.input.Update()
}

// Position returns the sprite center.
func (pa *Actor) Position() Vec2 { return pa.position }

func (pa *Actor) SetPosition(position Vec2) { pa.position = position }

func (pa *Actor) State() State { return pa.state }

// Angle returns the orientation in counter-clockwise whole degrees.
func (pa *Actor) Angle() int { return AngleToDegrees(pa.angle) }

func (pa *Actor) Movmode() MovMode { return pa.movmode }

func (pa *Actor) Layer() Layer         { return pa.layer }
func (pa *Actor) SetLayer(layer Layer) { pa.layer = layer }

func (pa *Actor) IsMidair() bool          { return pa.midair }
func (pa *Actor) IsTouchingCeiling() bool { return pa.touchingCeiling }
func (pa *Actor) IsFacingRight() bool     { return pa.facingRight }
func (pa *Actor) IsInsideWall() bool      { return pa.insideWall }

func (pa *Actor) EnableWinningPose() { pa.winningPose = true }

// ChargeIntensity is in [0, 1].
func (pa *Actor) ChargeIntensity() float32 { return pa.chargeIntensity }

// RollDelta is the foot-sensor height difference between the normal and
// the jump/roll poses, used by sprite code to offset the rolling sprite.
func (pa *Actor) RollDelta() int {
	return pa.bank[labelA][poseNormal].Y2() - pa.bank[labelA][poseJumpRoll].Y2()
}

// LockHorizontallyFor masks the LEFT/RIGHT inputs for the given duration.
// The lock only ever grows; negative durations clamp to zero.
func (pa *Actor) LockHorizontallyFor(seconds float32) {
	seconds = maxf(seconds, 0)
	if seconds > pa.hlockTimer {
		pa.hlockTimer = seconds
	}
}

// Resurrect revives a dead or drowned actor at the given position. It is
// a no-op in any other state.
func (pa *Actor) Resurrect(position Vec2) bool {
	if pa.state == Dead || pa.state == Drowned {
		pa.gsp = 0
		pa.xsp = 0
		pa.ysp = 0
		pa.facingRight = true
		pa.state = Stopped
		pa.SetPosition(position)
		return true
	}
	return false
}

// BoundingBox returns the sensor-derived bounding box and the sprite
// center for the current pose and movement mode.
func (pa *Actor) BoundingBox() (width, height int, center Vec2) {
	a := pa.bank[labelA][poseNormal].Tail(pa.position, pa.movmode)
	d := pa.sensorD().Head(pa.position, pa.movmode)
	m := pa.sensorM().Head(pa.position, pa.movmode)
	n := pa.sensorN().Tail(pa.position, pa.movmode)

	switch pa.movmode {
	case MMFloor:
		width, height = n.X-m.X+1, a.Y-d.Y+1
	case MMCeiling:
		width, height = m.X-n.X+1, d.Y-a.Y+1
	case MMRightWall:
		width, height = a.X-d.X+1, m.Y-n.Y+1
	case MMLeftWall:
		width, height = d.X-a.X+1, n.Y-m.Y+1
	}
	return width, height, pa.position
}

// IsStandingOnPlatform reports whether either foot sensor touches the
// given obstacle.
func (pa *Actor) IsStandingOnPlatform(o *Obstacle) bool {
	if o == nil {
		return false
	}
	x1, y1, x2, y2 := pa.sensorA().WorldPos(pa.position, pa.movmode)
	if o.GotCollision(x1, y1, x2, y2) {
		return true
	}
	x1, y1, x2, y2 = pa.sensorB().WorldPos(pa.position, pa.movmode)
	return o.GotCollision(x1, y1, x2, y2)
}

// Input exposes the actor's input device.
func (pa *Actor) Input() *Input { return pa.input }

// input injection helpers; hold semantics, so call every frame

func (pa *Actor) WalkRight() { pa.input.SimulateDown(ButtonRight) }
func (pa *Actor) WalkLeft()  { pa.input.SimulateDown(ButtonLeft) }
func (pa *Actor) Duck()      { pa.input.SimulateDown(ButtonDown) }
func (pa *Actor) LookUp()    { pa.input.SimulateDown(ButtonUp) }
func (pa *Actor) Jump()      { pa.input.SimulateDown(ButtonFire1) }

// state setters

func (pa *Actor) Kill()   { pa.state = Dead }
func (pa *Actor) Hit()    { pa.state = GettingHit }
func (pa *Actor) Bounce() { pa.state = Jumping }
func (pa *Actor) Spring() { pa.state = Springing }
func (pa *Actor) Roll()   { pa.state = Rolling }
func (pa *Actor) Drown()  { pa.state = Drowned }

func (pa *Actor) Breathe() {
	pa.state = Breathing
	pa.breatheTimer = 0.5
}

// AngleSensors returns the last accepted angle probe points, for debug
// rendering.
func (pa *Actor) AngleSensors() [2]Vec2 { return pa.angleSensor }

// Sensors visits the seven active sensors with their world segments, for
// debug rendering.
func (pa *Actor) Sensors(fn func(s *Sensor, x1, y1, x2, y2 int)) {
	for l := labelA; l < sensorCount; l++ {
		s := pa.sensor(l)
		x1, y1, x2, y2 := s.WorldPos(pa.position, pa.movmode)
		fn(s, x1, y1, x2, y2)
	}
}

package physics

import "math"

// targetFPS is the frame rate the model parameters are calibrated for.
// Units end up in pixels/s and pixels/s², so the simulation itself may run
// at any dt.
const targetFPS = 60.0

// FixedTimestep is the preferred simulation step.
const FixedTimestep = 1.0 / targetFPS

// modelParams holds every tunable of the physics model.
type modelParams struct {
	acc               float32 // acceleration
	dec               float32 // deceleration
	frc               float32 // friction
	capspeed          float32 // cap speed
	topspeed          float32 // top speed
	topyspeed         float32 // top y speed
	air               float32 // air acceleration
	airdrag           float32 // air drag ratio per 1/60 s, in [0,1]
	jmp               float32 // initial jump velocity
	jmprel            float32 // release jump velocity
	diejmp            float32 // death jump velocity
	hitjmp            float32 // get hit jump velocity
	grv               float32 // gravity
	slp               float32 // slope factor
	chrg              float32 // charge-and-release max speed
	rollfrc           float32 // roll friction
	rolldec           float32 // roll deceleration
	rolluphillslp     float32 // roll uphill slope
	rolldownhillslp   float32 // roll downhill slope
	rollthreshold     float32
	unrollthreshold   float32
	walkthreshold     float32
	falloffthreshold  float32
	brakingthreshold  float32
	airdragthreshold  float32
	airdragxthreshold float32
	chrgthreshold     float32
	waittime          float32 // seconds

	// uphill jump reduction; kept off to match the tuned feel
	jumpAttenuation bool
}

// ResetModelParameters restores the default physics model, calibrated at
// 60 FPS.
func (pa *Actor) ResetModelParameters() {
	const fpsmul = float32(targetFPS)

	pa.param.acc = (3.0 / 64.0) * fpsmul * fpsmul
	pa.param.dec = 0.5 * fpsmul * fpsmul
	pa.param.frc = (3.0 / 64.0) * fpsmul * fpsmul
	pa.param.capspeed = 16.0 * fpsmul
	pa.param.topspeed = 6.0 * fpsmul
	pa.param.topyspeed = 16.0 * fpsmul
	pa.param.air = (6.0 / 64.0) * fpsmul * fpsmul
	pa.param.jmp = -6.5 * fpsmul
	pa.param.jmprel = -4.0 * fpsmul
	pa.param.diejmp = -7.0 * fpsmul
	pa.param.hitjmp = -4.0 * fpsmul
	pa.param.grv = (14.0 / 64.0) * fpsmul * fpsmul
	pa.param.slp = (8.0 / 64.0) * fpsmul * fpsmul
	pa.param.chrg = 12.0 * fpsmul
	pa.param.walkthreshold = 0.5 * fpsmul
	pa.param.unrollthreshold = 0.5 * fpsmul
	pa.param.rollthreshold = 1.0 * fpsmul
	pa.param.rollfrc = (3.0 / 128.0) * fpsmul * fpsmul
	pa.param.rolldec = (8.0 / 64.0) * fpsmul * fpsmul
	pa.param.rolluphillslp = (5.0 / 64.0) * fpsmul * fpsmul
	pa.param.rolldownhillslp = (20.0 / 64.0) * fpsmul * fpsmul
	pa.param.falloffthreshold = 2.5 * fpsmul
	pa.param.brakingthreshold = 4.0 * fpsmul
	pa.param.airdragthreshold = -4.0 * fpsmul
	pa.param.airdragxthreshold = (8.0 / 64.0) * fpsmul
	pa.param.chrgthreshold = 1.0 / 64.0
	pa.param.waittime = 3.0
	pa.param.jumpAttenuation = false

	pa.SetAirdrag(31.0 / 32.0)
}

// Airdrag returns the air drag ratio per 1/60 s.
func (pa *Actor) Airdrag() float32 { return pa.param.airdrag }

// SetAirdrag clamps the ratio to [0,1] and recomputes the linear
// approximation xsp *= c0·dt + c1 of pow(airdrag, 60·dt), first-order
// accurate at dt = 1/60.
func (pa *Actor) SetAirdrag(value float32) {
	a := clamp01(value)
	pa.param.airdrag = a
	switch {
	case a > 0 && a < 1:
		ln := float32(math.Log(float64(a)))
		pa.airdragCoefficient[0] = 60.0 * a * ln
		pa.airdragCoefficient[1] = a * (1.0 - ln)
	case a > 0:
		pa.airdragCoefficient[0] = 0.0
		pa.airdragCoefficient[1] = 1.0
	default:
		pa.airdragCoefficient[0] = 0.0
		pa.airdragCoefficient[1] = 0.0
	}
}

// AirdragCoefficient exposes the precomputed approximation, mostly for
// diagnostics.
func (pa *Actor) AirdragCoefficient() [2]float32 { return pa.airdragCoefficient }

// speed accessors

func (pa *Actor) Xsp() float32         { return pa.xsp }
func (pa *Actor) SetXsp(value float32) { pa.xsp = value }
func (pa *Actor) Ysp() float32         { return pa.ysp }
func (pa *Actor) SetYsp(value float32) { pa.ysp = value }
func (pa *Actor) Gsp() float32         { return pa.gsp }
func (pa *Actor) SetGsp(value float32) { pa.gsp = value }

// tunable parameter accessors

func (pa *Actor) Acc() float32         { return pa.param.acc }
func (pa *Actor) SetAcc(value float32) { pa.param.acc = value }

func (pa *Actor) Dec() float32         { return pa.param.dec }
func (pa *Actor) SetDec(value float32) { pa.param.dec = value }

func (pa *Actor) Frc() float32         { return pa.param.frc }
func (pa *Actor) SetFrc(value float32) { pa.param.frc = value }

func (pa *Actor) Capspeed() float32         { return pa.param.capspeed }
func (pa *Actor) SetCapspeed(value float32) { pa.param.capspeed = value }

func (pa *Actor) Topspeed() float32         { return pa.param.topspeed }
func (pa *Actor) SetTopspeed(value float32) { pa.param.topspeed = value }

func (pa *Actor) Topyspeed() float32         { return pa.param.topyspeed }
func (pa *Actor) SetTopyspeed(value float32) { pa.param.topyspeed = value }

func (pa *Actor) Air() float32         { return pa.param.air }
func (pa *Actor) SetAir(value float32) { pa.param.air = value }

func (pa *Actor) Jmp() float32         { return pa.param.jmp }
func (pa *Actor) SetJmp(value float32) { pa.param.jmp = value }

func (pa *Actor) Jmprel() float32         { return pa.param.jmprel }
func (pa *Actor) SetJmprel(value float32) { pa.param.jmprel = value }

func (pa *Actor) Diejmp() float32         { return pa.param.diejmp }
func (pa *Actor) SetDiejmp(value float32) { pa.param.diejmp = value }

func (pa *Actor) Hitjmp() float32         { return pa.param.hitjmp }
func (pa *Actor) SetHitjmp(value float32) { pa.param.hitjmp = value }

func (pa *Actor) Grv() float32         { return pa.param.grv }
func (pa *Actor) SetGrv(value float32) { pa.param.grv = value }

func (pa *Actor) Slp() float32         { return pa.param.slp }
func (pa *Actor) SetSlp(value float32) { pa.param.slp = value }

func (pa *Actor) Chrg() float32         { return pa.param.chrg }
func (pa *Actor) SetChrg(value float32) { pa.param.chrg = value }

func (pa *Actor) Rollfrc() float32         { return pa.param.rollfrc }
func (pa *Actor) SetRollfrc(value float32) { pa.param.rollfrc = value }

func (pa *Actor) Rolldec() float32         { return pa.param.rolldec }
func (pa *Actor) SetRolldec(value float32) { pa.param.rolldec = value }

func (pa *Actor) Rolluphillslp() float32         { return pa.param.rolluphillslp }
func (pa *Actor) SetRolluphillslp(value float32) { pa.param.rolluphillslp = value }

func (pa *Actor) Rolldownhillslp() float32         { return pa.param.rolldownhillslp }
func (pa *Actor) SetRolldownhillslp(value float32) { pa.param.rolldownhillslp = value }

func (pa *Actor) Rollthreshold() float32         { return pa.param.rollthreshold }
func (pa *Actor) SetRollthreshold(value float32) { pa.param.rollthreshold = value }

func (pa *Actor) Unrollthreshold() float32         { return pa.param.unrollthreshold }
func (pa *Actor) SetUnrollthreshold(value float32) { pa.param.unrollthreshold = value }

func (pa *Actor) Walkthreshold() float32         { return pa.param.walkthreshold }
func (pa *Actor) SetWalkthreshold(value float32) { pa.param.walkthreshold = value }

func (pa *Actor) Falloffthreshold() float32         { return pa.param.falloffthreshold }
func (pa *Actor) SetFalloffthreshold(value float32) { pa.param.falloffthreshold = value }

func (pa *Actor) Brakingthreshold() float32         { return pa.param.brakingthreshold }
func (pa *Actor) SetBrakingthreshold(value float32) { pa.param.brakingthreshold = value }

func (pa *Actor) Airdragthreshold() float32         { return pa.param.airdragthreshold }
func (pa *Actor) SetAirdragthreshold(value float32) { pa.param.airdragthreshold = value }

func (pa *Actor) Airdragxthreshold() float32         { return pa.param.airdragxthreshold }
func (pa *Actor) SetAirdragxthreshold(value float32) { pa.param.airdragxthreshold = value }

func (pa *Actor) Chrgthreshold() float32         { return pa.param.chrgthreshold }
func (pa *Actor) SetChrgthreshold(value float32) { pa.param.chrgthreshold = value }

func (pa *Actor) Waittime() float32         { return pa.param.waittime }
func (pa *Actor) SetWaittime(value float32) { pa.param.waittime = value }

func (pa *Actor) JumpAttenuation() bool         { return pa.param.jumpAttenuation }
func (pa *Actor) SetJumpAttenuation(value bool) { pa.param.jumpAttenuation = value }

package physics

import "testing"

func TestInputEdgeDetection(t *testing.T) {
	in := NewInput()

	in.SimulateDown(ButtonFire1)
	if !in.Down(ButtonFire1) || !in.Pressed(ButtonFire1) {
		t.Fatalf("first frame: want down and pressed")
	}

	in.Update()
	in.SimulateDown(ButtonFire1)
	if !in.Down(ButtonFire1) {
		t.Fatalf("second frame: want down")
	}
	if in.Pressed(ButtonFire1) {
		t.Fatalf("second frame: held button must not re-trigger pressed")
	}

	in.Update()
	if in.Down(ButtonFire1) {
		t.Fatalf("third frame: button was not re-simulated, want up")
	}
}

func TestInputSimulateUpMasksFrame(t *testing.T) {
	in := NewInput()
	in.SimulateDown(ButtonLeft)
	in.SimulateUp(ButtonLeft)
	if in.Down(ButtonLeft) {
		t.Fatalf("SimulateUp should mask the current frame")
	}
}

func TestInputReset(t *testing.T) {
	in := NewInput()
	in.SimulateDown(ButtonRight)
	in.Update()
	in.SimulateDown(ButtonRight)
	in.Reset()
	if in.Down(ButtonRight) {
		t.Fatalf("Reset should release all buttons")
	}
	in.SimulateDown(ButtonRight)
	if !in.Pressed(ButtonRight) {
		t.Fatalf("a press right after Reset is an edge")
	}
}

func TestInputDisable(t *testing.T) {
	in := NewInput()
	in.Disable()
	in.SimulateDown(ButtonUp)
	if in.Down(ButtonUp) || in.Pressed(ButtonUp) {
		t.Fatalf("disabled device must report nothing")
	}
	in.Enable()
	if !in.Down(ButtonUp) {
		t.Fatalf("Enable should restore the simulated state")
	}
}

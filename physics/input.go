package physics

// Button is one of the six digital buttons of the actor's input device.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonFire1
	ButtonFire2 // reserved
	buttonCount
)

// Input is a six-button digital device. Callers feed it with Simulate*
// every frame; Update swaps the edge-detection buffers and clears the
// current frame, so held buttons must be re-simulated each frame.
type Input struct {
	current  [buttonCount]bool
	previous [buttonCount]bool
	enabled  bool
}

func NewInput() *Input {
	return &Input{enabled: true}
}

// Update begins a new input frame: the current state becomes the previous
// one and the current state is cleared.
func (in *Input) Update() {
	in.previous = in.current
	in.current = [buttonCount]bool{}
}

// Down reports whether a button is held this frame.
func (in *Input) Down(b Button) bool {
	return in.enabled && in.current[b]
}

// Pressed reports whether a button went down this frame (edge trigger).
func (in *Input) Pressed(b Button) bool {
	return in.enabled && in.current[b] && !in.previous[b]
}

func (in *Input) SimulateDown(b Button) {
	in.current[b] = true
}

func (in *Input) SimulateUp(b Button) {
	in.current[b] = false
}

// Reset releases every button, including the previous frame's state.
func (in *Input) Reset() {
	in.current = [buttonCount]bool{}
	in.previous = [buttonCount]bool{}
}

// Disable turns the device off: Down and Pressed report false until
// Enable is called.
func (in *Input) Disable() {
	in.enabled = false
}

func (in *Input) Enable() {
	in.enabled = true
}

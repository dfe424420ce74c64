package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input polled for one frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Pointer activation (mouse button or touch) this frame
	PointerPressed bool
	PointerX       int
	PointerY       int
}

// InputSource yields one InputState per frame
type InputSource interface {
	Poll() InputState
}

// InputSystem polls the keyboard, mouse and touch screen through Ebiten
type InputSystem struct {
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a live input source
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state (implements InputSource)
func (s *InputSystem) Poll() InputState {
	in := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.PointerPressed = true
		in.PointerX, in.PointerY = ebiten.CursorPosition()
		return in
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		in.PointerPressed = true
		in.PointerX, in.PointerY = ebiten.TouchPosition(s.touchIDs[0])
	}
	return in
}

// PlayerVelocity converts directional input into an absolute velocity.
// Left wins over right and up wins over down when both are held.
func PlayerVelocity(in InputState, speed float64) (vx, vy float64) {
	switch {
	case in.Left:
		vx = -speed
	case in.Right:
		vx = speed
	}
	switch {
	case in.Up:
		vy = -speed
	case in.Down:
		vy = speed
	}
	return vx, vy
}

// ScriptedInput replays a fixed list of frames, then reports idle input.
// Useful for driving scenes without a window.
type ScriptedInput struct {
	Frames []InputState
	next   int
}

// Poll returns the next scripted frame (implements InputSource)
func (s *ScriptedInput) Poll() InputState {
	if s.next >= len(s.Frames) {
		return InputState{}
	}
	in := s.Frames[s.next]
	s.next++
	return in
}

// Push appends frames to the script
func (s *ScriptedInput) Push(frames ...InputState) {
	s.Frames = append(s.Frames, frames...)
}

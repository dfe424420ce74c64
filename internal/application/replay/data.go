// Package replay records polled input frames and plays them back.
package replay

import "github.com/younwookim/labyrinth/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	P  bool `json:"p,omitempty"`  // PointerPressed
	PX int  `json:"px,omitempty"` // PointerX
	PY int  `json:"py,omitempty"` // PointerY
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(n int, in system.InputState) FrameInput {
	return FrameInput{
		F:  n,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		P:  in.PointerPressed,
		PX: in.PointerX,
		PY: in.PointerY,
	}
}

func (fi FrameInput) toInput() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		Up:             fi.U,
		Down:           fi.D,
		PointerPressed: fi.P,
		PointerX:       fi.PX,
		PointerY:       fi.PY,
	}
}

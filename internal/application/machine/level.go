package machine

// Marker is the visual feedback attached to a resolved door
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCorrect
	MarkerWrong
)

// String returns the string representation of the marker
func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "None"
	case MarkerCorrect:
		return "Correct"
	case MarkerWrong:
		return "Wrong"
	default:
		return "Unknown"
	}
}

// Level1State is the transient data of the key level.
// A fresh value is created on every Level1 entry.
type Level1State struct {
	Score      int
	HasKey     bool
	KeyPresent bool // a collectable key entity exists in the level
	Spawns     int  // bumped by every key spawn; a new value means a new key
}

// DoorStatus tracks one Level2 door
type DoorStatus struct {
	Clicked bool
	Marker  Marker
}

// Level2State is the transient data of the door-guessing level
type Level2State struct {
	CorrectDoor int
	Attempts    int
	Doors       []DoorStatus
}

// IsCorrect reports whether the door at index is the winning one
func (s *Level2State) IsCorrect(index int) bool {
	return index == s.CorrectDoor
}

// validDoor reports whether index addresses an existing door
func (s *Level2State) validDoor(index int) bool {
	return index >= 0 && index < len(s.Doors)
}

// clearDoors resets every door's clicked flag and marker
func (s *Level2State) clearDoors() {
	for i := range s.Doors {
		s.Doors[i] = DoorStatus{}
	}
}

package machine

import "fmt"

// Event is a gameplay occurrence delivered to the machine by the active scene
type Event interface {
	isEvent()
	fmt.Stringer
}

// StartActivated fires when the menu start button is activated
type StartActivated struct{}

func (StartActivated) isEvent()       {}
func (StartActivated) String() string { return "StartActivated" }

// KeyCollected fires when the player overlaps the Level1 key
type KeyCollected struct{}

func (KeyCollected) isEvent()       {}
func (KeyCollected) String() string { return "KeyCollected" }

// DoorEntered fires when the player overlaps the Level1 exit door
type DoorEntered struct{}

func (DoorEntered) isEvent()       {}
func (DoorEntered) String() string { return "DoorEntered" }

// EnemyContact fires when the player touches any enemy
type EnemyContact struct{}

func (EnemyContact) isEvent()       {}
func (EnemyContact) String() string { return "EnemyContact" }

// DoorTouched fires when the player overlaps one of the Level2 doors
type DoorTouched struct {
	Index int
}

func (DoorTouched) isEvent()         {}
func (e DoorTouched) String() string { return fmt.Sprintf("DoorTouched(%d)", e.Index) }

// PointerActivated fires on any pointer press (mouse button or touch)
type PointerActivated struct{}

func (PointerActivated) isEvent()       {}
func (PointerActivated) String() string { return "PointerActivated" }

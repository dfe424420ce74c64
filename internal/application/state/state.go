// Package state defines the scene identifiers of the game.
package state

// SceneID identifies one of the mutually exclusive application scenes
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneLevel1
	SceneLevel2
	SceneGameOver
	SceneWin
)

// All lists every scene in declaration order
var All = []SceneID{SceneMenu, SceneLevel1, SceneLevel2, SceneGameOver, SceneWin}

// String returns the string representation of the scene
func (s SceneID) String() string {
	switch s {
	case SceneMenu:
		return "Menu"
	case SceneLevel1:
		return "Level1"
	case SceneLevel2:
		return "Level2"
	case SceneGameOver:
		return "GameOver"
	case SceneWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// IsLevel reports whether the scene is a gameplay level
func (s SceneID) IsLevel() bool {
	return s == SceneLevel1 || s == SceneLevel2
}

// IsEnding reports whether the scene is one of the two end screens
func (s SceneID) IsEnding() bool {
	return s == SceneGameOver || s == SceneWin
}

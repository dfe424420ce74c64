// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, the two levels, game over, win) implements Scene.
// Scenes never switch themselves: they translate input and overlaps into
// machine events, and the game driver rebuilds the active scene whenever
// the machine changes epoch.
package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/state"
	"github.com/younwookim/labyrinth/internal/application/system"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
	"github.com/younwookim/labyrinth/internal/infrastructure/storage"
)

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
type Scene interface {
	// ID returns the machine state this scene renders
	ID() state.SceneID

	// OnEnter is called once after the scene is built, before the first Update.
	OnEnter()

	// Update polls input exactly once and advances the scene.
	// dt is the delta time in seconds (typically 1/60).
	// Returns an error to terminate the game.
	Update(dt float64) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnExit is called when the machine has left this scene.
	OnExit()
}

// Factory builds a fresh scene for one visit of its state
type Factory func(ctx *Context) Scene

// Context is the application context shared by every scene
type Context struct {
	Machine *machine.Machine
	Config  *config.GameConfig
	Input   system.InputSource
	Rand    *rand.Rand
	Log     zerolog.Logger

	// Stats may be nil (menu then hides the record)
	Stats *storage.StatsStore
}

// Logger returns the context logger tagged with the scene name
func (c *Context) Logger(id state.SceneID) zerolog.Logger {
	return c.Log.With().Str("scene", id.String()).Logger()
}

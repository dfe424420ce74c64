// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
)

// Game implements ebiten.Game. It follows the machine: whenever the
// machine's epoch changes, the current scene is exited and a fresh one is
// built from the factory of the new state.
type Game struct {
	ctx       *scene.Context
	factories map[state.SceneID]scene.Factory
	current   scene.Scene
	epoch     uint64
	screenW   int
	screenH   int
	dt        float64
}

// New creates a new Game showing the machine's current scene.
// The initial scene's OnEnter is called immediately.
func New(ctx *scene.Context, factories map[state.SceneID]scene.Factory, screenW, screenH int) (*Game, error) {
	for _, id := range state.All {
		if factories[id] == nil {
			return nil, fmt.Errorf("no scene factory for %s", id)
		}
	}

	g := &Game{
		ctx:       ctx,
		factories: factories,
		screenW:   screenW,
		screenH:   screenH,
		dt:        1.0 / 60.0, // Default to 60 FPS
	}
	g.build()
	return g, nil
}

// build enters the scene matching the machine state
func (g *Game) build() {
	m := g.ctx.Machine
	g.epoch = m.Epoch()
	g.current = g.factories[m.Current()](g.ctx)
	g.ctx.Log.Debug().Stringer("scene", g.current.ID()).Uint64("epoch", g.epoch).Msg("scene built")
	g.current.OnEnter()
}

// Update updates the current scene, advances the machine's delayed
// actions and switches scenes when the machine moved on.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.current.Update(g.dt); err != nil {
		return err
	}
	g.ctx.Machine.Advance(g.dt)

	if g.ctx.Machine.Epoch() != g.epoch {
		g.current.OnExit()
		g.build()
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

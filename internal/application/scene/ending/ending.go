// Package ending implements the GameOver and Win screens.
// Any pointer activation returns to the menu.
package ending

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
)

const (
	gameOverText = "Game Over"
	winText      = "Você Ganhou!"
	hintText     = "Clique para voltar ao menu"
)

// Ending is a full-screen message waiting for a click
type Ending struct {
	ctx     *scene.Context
	id      state.SceneID
	message string
	overlay color.RGBA
	score   int
}

// NewGameOver creates the game over scene (scene.Factory)
func NewGameOver(ctx *scene.Context) scene.Scene {
	return &Ending{
		ctx:     ctx,
		id:      state.SceneGameOver,
		message: gameOverText,
		overlay: color.RGBA{100, 0, 0, 255},
	}
}

// NewWin creates the win scene (scene.Factory)
func NewWin(ctx *scene.Context) scene.Scene {
	return &Ending{
		ctx:     ctx,
		id:      state.SceneWin,
		message: winText,
		overlay: color.RGBA{0, 80, 40, 255},
	}
}

// ID implements scene.Scene
func (e *Ending) ID() state.SceneID { return e.id }

// OnEnter captures the score of the finished run
func (e *Ending) OnEnter() {
	e.score = e.ctx.Machine.Score()
	log := e.ctx.Logger(e.id)
	log.Info().Int("score", e.score).Msg("run finished")
}

// OnExit implements scene.Scene
func (e *Ending) OnExit() {}

// Update returns to the menu on pointer activation
func (e *Ending) Update(dt float64) error {
	if e.ctx.Input.Poll().PointerPressed {
		e.ctx.Machine.Dispatch(machine.PointerActivated{})
	}
	return nil
}

// Draw renders the message overlay
func (e *Ending) Draw(screen *ebiten.Image) {
	d := e.ctx.Config.Settings.Display
	screen.Fill(e.overlay)
	scene.CenterText(screen, e.message, d.ScreenWidth, d.ScreenHeight/2-20)
	scene.CenterText(screen, hintText, d.ScreenWidth, d.ScreenHeight/2+10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Placar: %d", e.score), 10, 10)
}

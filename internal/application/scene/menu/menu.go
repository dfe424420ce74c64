// Package menu implements the title screen with its start button.
package menu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
	"github.com/younwookim/labyrinth/internal/domain/entity"
)

const (
	title      = "Jogo do Labirinto"
	startLabel = "Iniciar"
)

// Menu is the title screen
type Menu struct {
	ctx    *scene.Context
	log    zerolog.Logger
	button entity.Rect
}

// New creates the menu scene (scene.Factory)
func New(ctx *scene.Context) scene.Scene {
	b := ctx.Config.Settings.Menu.StartButton
	return &Menu{
		ctx: ctx,
		log: ctx.Logger(state.SceneMenu),
		// configured by centre
		button: entity.Rect{
			X: float64(b.X) - float64(b.W)/2,
			Y: float64(b.Y) - float64(b.H)/2,
			W: float64(b.W),
			H: float64(b.H),
		},
	}
}

// ID implements scene.Scene
func (m *Menu) ID() state.SceneID { return state.SceneMenu }

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {
	m.log.Debug().Msg("menu shown")
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}

// Button returns the start button in screen coordinates
func (m *Menu) Button() entity.Rect {
	return m.button
}

// Update starts a run when the start button is activated
func (m *Menu) Update(dt float64) error {
	in := m.ctx.Input.Poll()
	if !in.PointerPressed {
		return nil
	}
	if m.button.Contains(float64(in.PointerX), float64(in.PointerY)) {
		m.ctx.Machine.Dispatch(machine.StartActivated{})
	}
	return nil
}

// Draw renders the title, the start button and the play record
func (m *Menu) Draw(screen *ebiten.Image) {
	d := m.ctx.Config.Settings.Display
	screen.Fill(scene.ColorBG)

	scene.CenterText(screen, title, d.ScreenWidth, d.ScreenHeight/4)

	b := m.button
	ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, scene.ColorButton)
	scene.CenterText(screen, startLabel, d.ScreenWidth, int(b.Y+b.H/2)-8)

	if m.ctx.Stats == nil {
		return
	}
	st := m.ctx.Stats.Stats()
	record := fmt.Sprintf("Partidas: %d  Vitorias: %d  Derrotas: %d  Recorde: %d",
		st.Plays, st.Wins, st.Losses, st.BestScore)
	scene.CenterText(screen, record, d.ScreenWidth, d.ScreenHeight/4+30)
}

// Package level2 implements the door-guessing level.
package level2

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
	"github.com/younwookim/labyrinth/internal/application/system"
	"github.com/younwookim/labyrinth/internal/domain/entity"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
)

var (
	colorCorrect = color.RGBA{60, 200, 90, 255}
	colorWrong   = color.RGBA{210, 50, 50, 255}
)

// Level2 is the door-guessing scene
type Level2 struct {
	ctx   *scene.Context
	log   zerolog.Logger
	level *config.LevelConfig
	epoch uint64

	movement *system.MovementSystem
	player   *entity.Player
	doors    []*entity.Door
	enemies  []*entity.Enemy
}

// New creates the Level2 scene (scene.Factory)
func New(ctx *scene.Context) scene.Scene {
	return &Level2{
		ctx:   ctx,
		log:   ctx.Logger(state.SceneLevel2),
		level: ctx.Config.Level2,
	}
}

// ID implements scene.Scene
func (l *Level2) ID() state.SceneID { return state.SceneLevel2 }

// OnEnter builds the doors and the randomized enemies
func (l *Level2) OnEnter() {
	s := l.ctx.Config.Settings
	l.epoch = l.ctx.Machine.Epoch()
	l.movement = system.NewMovementSystem(system.WorldBounds(l.level.Bounds))

	spawn := l.level.PlayerSpawn
	l.player = entity.NewPlayer(float64(spawn.X), float64(spawn.Y),
		s.Player.Width, s.Player.Height, s.Player.Bounce)
	l.doors = system.SpawnDoors(l.level.Doors, s.Sizes.Door)
	l.enemies = system.SpawnEnemies(l.level.Enemies, s.Sizes.Enemy, l.ctx.Rand)

	for _, e := range l.enemies {
		l.log.Debug().Uint32("enemy", uint32(e.ID)).Float64("vx", e.VX).Float64("vy", e.VY).Msg("enemy spawned")
	}
}

// OnExit implements scene.Scene
func (l *Level2) OnExit() {}

func (l *Level2) left() bool {
	return l.ctx.Machine.Epoch() != l.epoch
}

// Update moves everything, then reports touched doors followed by enemy
// contact. Door flags live in the machine, so repeated overlaps of a
// clicked door are dropped there.
func (l *Level2) Update(dt float64) error {
	in := l.ctx.Input.Poll()
	if l.left() {
		return nil
	}

	l.player.SetVelocity(system.PlayerVelocity(in, l.ctx.Config.Settings.Player.Speed))
	l.movement.MovePlayer(l.player, dt)
	l.movement.MoveEnemies(l.enemies, dt)
	if l.level.EnemyBounce {
		l.movement.CollideEnemies(l.enemies)
	}

	m := l.ctx.Machine
	for _, i := range system.TouchedDoors(l.player, l.doors) {
		m.Dispatch(machine.DoorTouched{Index: i})
	}

	if system.TouchingEnemy(l.player, l.enemies) {
		m.Dispatch(machine.EnemyContact{})
	}
	return nil
}

// Player returns the player entity
func (l *Level2) Player() *entity.Player { return l.player }

// Draw renders the level
func (l *Level2) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ParseColor(l.level.Background, scene.ColorBG))

	st := l.ctx.Machine.Level2()
	for _, d := range l.doors {
		c := scene.ColorDoor
		if st != nil && d.Index < len(st.Doors) {
			switch st.Doors[d.Index].Marker {
			case machine.MarkerCorrect:
				c = colorCorrect
			case machine.MarkerWrong:
				c = colorWrong
			}
		}
		scene.DrawBody(screen, &d.Body, c)
	}
	for _, e := range l.enemies {
		if e.Active {
			scene.DrawBody(screen, &e.Body, scene.ColorEnemy)
		}
	}
	scene.DrawBody(screen, &l.player.Body, scene.ColorPlayer)

	d := l.ctx.Config.Settings.Display
	scene.CenterText(screen, l.level.Instruction, d.ScreenWidth, 16)
	if st != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tentativas restantes: %d", st.Attempts), 16, 40)
	}
}

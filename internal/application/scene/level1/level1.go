// Package level1 implements the key level: collect the key, then walk
// through the door while avoiding the bouncing enemy.
package level1

import (
	"fmt"

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

// Level1 is the key level scene
type Level1 struct {
	ctx   *scene.Context
	log   zerolog.Logger
	level *config.LevelConfig
	epoch uint64

	movement *system.MovementSystem
	stage    *entity.Stage
	player   *entity.Player
	key      *entity.Key
	keySpawn int // Level1State.Spawns the key was placed for
	door     *entity.Door
	enemies  []*entity.Enemy
}

// New creates the Level1 scene (scene.Factory)
func New(ctx *scene.Context) scene.Scene {
	return &Level1{
		ctx:   ctx,
		log:   ctx.Logger(state.SceneLevel1),
		level: ctx.Config.Level1,
	}
}

// ID implements scene.Scene
func (l *Level1) ID() state.SceneID { return state.SceneLevel1 }

// OnEnter builds the level entities
func (l *Level1) OnEnter() {
	s := l.ctx.Config.Settings
	l.epoch = l.ctx.Machine.Epoch()
	l.movement = system.NewMovementSystem(system.WorldBounds(l.level.Bounds))
	l.stage = system.LoadStage(l.level.Ground)

	spawn := l.level.PlayerSpawn
	l.player = entity.NewPlayer(float64(spawn.X), float64(spawn.Y),
		s.Player.Width, s.Player.Height, s.Player.Bounce)

	doors := system.SpawnDoors(l.level.Doors, s.Sizes.Door)
	if len(doors) > 0 {
		l.door = doors[0]
	}
	l.enemies = system.SpawnEnemies(l.level.Enemies, s.Sizes.Enemy, l.ctx.Rand)

	l.syncKey()
	l.log.Debug().Int("enemies", len(l.enemies)).Msg("level built")
}

// OnExit implements scene.Scene
func (l *Level1) OnExit() {}

// syncKey mirrors the machine's key onto the key entity. Every new spawn
// drops the old entity and places a new one at random inside the key area.
func (l *Level1) syncKey() {
	st := l.ctx.Machine.Level1()
	if st == nil {
		return
	}
	switch {
	case st.KeyPresent && (l.key == nil || l.keySpawn != st.Spawns):
		area := config.RectConfig{}
		if l.level.KeyArea != nil {
			area = *l.level.KeyArea
		}
		x, y := system.RandomPoint(l.ctx.Rand, area)
		size := l.ctx.Config.Settings.Sizes.Key
		l.key = entity.NewKey(float64(x), float64(y), size.Width, size.Height)
		l.keySpawn = st.Spawns
		l.log.Debug().Int("x", x).Int("y", y).Msg("key spawned")
	case !st.KeyPresent && l.key != nil:
		l.key = nil
	}
}

// left reports whether the machine has moved past this scene's visit
func (l *Level1) left() bool {
	return l.ctx.Machine.Epoch() != l.epoch
}

// Update moves the player and enemies, then resolves overlaps in order:
// door, key, enemy. Stops as soon as an overlap changes the scene.
func (l *Level1) Update(dt float64) error {
	in := l.ctx.Input.Poll()
	if l.left() {
		return nil
	}

	l.player.SetVelocity(system.PlayerVelocity(in, l.ctx.Config.Settings.Player.Speed))
	l.movement.MovePlayer(l.player, dt)
	l.movement.MoveEnemies(l.enemies, dt)

	m := l.ctx.Machine
	if l.door != nil && l.player.Overlaps(&l.door.Body) {
		m.Dispatch(machine.DoorEntered{})
		if l.left() {
			return nil
		}
	}

	if l.key != nil && l.player.Overlaps(&l.key.Body) {
		m.Dispatch(machine.KeyCollected{})
	}
	l.syncKey()

	if system.TouchingEnemy(l.player, l.enemies) {
		m.Dispatch(machine.EnemyContact{})
	}
	return nil
}

// Player returns the player entity
func (l *Level1) Player() *entity.Player { return l.player }

// Key returns the key entity, nil once collected
func (l *Level1) Key() *entity.Key { return l.key }

// Draw renders the level
func (l *Level1) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ParseColor(l.level.Background, scene.ColorBG))
	scene.DrawStage(screen, l.stage)

	if l.door != nil {
		scene.DrawBody(screen, &l.door.Body, scene.ColorDoor)
	}
	if l.key != nil {
		scene.DrawBody(screen, &l.key.Body, scene.ColorKey)
	}
	for _, e := range l.enemies {
		if e.Active {
			scene.DrawBody(screen, &e.Body, scene.ColorEnemy)
		}
	}
	scene.DrawBody(screen, &l.player.Body, scene.ColorPlayer)

	score := 0
	if st := l.ctx.Machine.Level1(); st != nil {
		score = st.Score
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Placar: %d", score), 16, 16)
}

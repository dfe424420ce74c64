package ending

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
	"github.com/younwookim/labyrinth/internal/application/system"
)

// newContext returns a context whose machine sits in GameOver
func newContext(frames ...system.InputState) *scene.Context {
	rng := rand.New(rand.NewSource(1))
	m := machine.New(machine.DefaultRules(), rng, zerolog.Nop())
	m.Dispatch(machine.StartActivated{})
	m.Dispatch(machine.KeyCollected{})
	m.Dispatch(machine.EnemyContact{})
	return &scene.Context{
		Machine: m,
		Input:   &system.ScriptedInput{Frames: frames},
		Rand:    rng,
		Log:     zerolog.Nop(),
	}
}

func TestEnding_Identity(t *testing.T) {
	ctx := newContext()

	over := NewGameOver(ctx).(*Ending)
	assert.Equal(t, state.SceneGameOver, over.ID())
	assert.Equal(t, "Game Over", over.message)

	win := NewWin(ctx).(*Ending)
	assert.Equal(t, state.SceneWin, win.ID())
	assert.Equal(t, "Você Ganhou!", win.message)
}

func TestEnding_PointerReturnsToMenu(t *testing.T) {
	ctx := newContext(
		system.InputState{Left: true},
		system.InputState{PointerPressed: true, PointerX: 5, PointerY: 5},
	)
	require.Equal(t, state.SceneGameOver, ctx.Machine.Current())

	e := NewGameOver(ctx).(*Ending)
	e.OnEnter()
	assert.Equal(t, 10, e.score)

	require.NoError(t, e.Update(1.0/60.0))
	assert.Equal(t, state.SceneGameOver, ctx.Machine.Current(), "keys do not dismiss")

	require.NoError(t, e.Update(1.0/60.0))
	assert.Equal(t, state.SceneMenu, ctx.Machine.Current())
}

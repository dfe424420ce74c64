package game

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/state"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	id            state.SceneID
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	onUpdate      func()
	updateErr     error
}

func (m *mockScene) ID() state.SceneID { return m.id }

func (m *mockScene) Update(dt float64) error {
	m.updateCalled++
	if m.onUpdate != nil {
		m.onUpdate()
	}
	return m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// harness records every scene the game builds
type harness struct {
	ctx   *scene.Context
	built []*mockScene
	setup map[state.SceneID]func(*mockScene)
}

func newHarness() *harness {
	rng := rand.New(rand.NewSource(1))
	return &harness{
		ctx: &scene.Context{
			Machine: machine.New(machine.DefaultRules(), rng, zerolog.Nop()),
			Rand:    rng,
			Log:     zerolog.Nop(),
		},
		setup: map[state.SceneID]func(*mockScene){},
	}
}

func (h *harness) factories() map[state.SceneID]scene.Factory {
	f := map[state.SceneID]scene.Factory{}
	for _, id := range state.All {
		f[id] = func(ctx *scene.Context) scene.Scene {
			s := &mockScene{id: id}
			if fn := h.setup[id]; fn != nil {
				fn(s)
			}
			h.built = append(h.built, s)
			return s
		}
	}
	return f
}

func (h *harness) last() *mockScene {
	return h.built[len(h.built)-1]
}

func TestNew(t *testing.T) {
	h := newHarness()
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	assert.NotNil(t, g)
	require.Len(t, h.built, 1)
	assert.Equal(t, state.SceneMenu, g.Current().ID())
	assert.Equal(t, 1, h.last().onEnterCalled, "OnEnter should be called on initial scene")
}

func TestNew_MissingFactory(t *testing.T) {
	h := newHarness()
	f := h.factories()
	delete(f, state.SceneWin)

	_, err := New(h.ctx, f, 320, 240)
	assert.ErrorContains(t, err, "Win")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	h := newHarness()
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, h.last().updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	h := newHarness()
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, h.last().drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	h := newHarness()
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	w, ht := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, ht)
}

func TestGame_SceneTransition(t *testing.T) {
	h := newHarness()
	h.setup[state.SceneMenu] = func(s *mockScene) {
		s.onUpdate = func() { h.ctx.Machine.Dispatch(machine.StartActivated{}) }
	}
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)
	menu := h.last()

	require.NoError(t, g.Update())

	assert.Equal(t, 1, menu.onExitCalled, "menu OnExit called on transition")
	require.Len(t, h.built, 2)
	level1 := h.last()
	assert.Equal(t, state.SceneLevel1, level1.ID())
	assert.Equal(t, 1, level1.onEnterCalled)
	assert.Same(t, level1, g.Current())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, level1.updateCalled)
	assert.Equal(t, 1, menu.updateCalled)
}

func TestGame_NoTransitionWithoutEvents(t *testing.T) {
	h := newHarness()
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Len(t, h.built, 1)
	assert.Equal(t, 5, h.last().updateCalled, "All updates go to the menu")
	assert.Equal(t, 0, h.last().onExitCalled)
}

func TestGame_DelayedTransitionFollowsFrames(t *testing.T) {
	h := newHarness()
	m := h.ctx.Machine
	m.Dispatch(machine.StartActivated{})
	m.Dispatch(machine.KeyCollected{})
	m.Dispatch(machine.DoorEntered{})
	correct := m.Level2().CorrectDoor

	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)
	require.Equal(t, state.SceneLevel2, g.Current().ID())
	require.True(t, m.Dispatch(machine.DoorTouched{Index: correct}))

	// 500ms is exactly 30 frames at 60 FPS
	for i := 0; i < 29; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, state.SceneLevel2, g.Current().ID())

	require.NoError(t, g.Update())
	assert.Equal(t, state.SceneWin, g.Current().ID())
}

func TestGame_UpdateError(t *testing.T) {
	h := newHarness()
	h.setup[state.SceneMenu] = func(s *mockScene) { s.updateErr = assert.AnError }
	g, err := New(h.ctx, h.factories(), 320, 240)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Update(), assert.AnError, "Error should propagate from scene")
}

type fakeRecorder struct {
	plays  int
	wins   []int
	losses []int
}

func (f *fakeRecorder) RecordPlay()          { f.plays++ }
func (f *fakeRecorder) RecordWin(score int)  { f.wins = append(f.wins, score) }
func (f *fakeRecorder) RecordLoss(score int) { f.losses = append(f.losses, score) }

func TestTrackStats(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := machine.New(machine.DefaultRules(), rng, zerolog.Nop())
	rec := &fakeRecorder{}
	TrackStats(m, rec)

	// run 1: key, then an enemy
	m.Dispatch(machine.StartActivated{})
	m.Dispatch(machine.KeyCollected{})
	m.Dispatch(machine.EnemyContact{})
	m.Dispatch(machine.PointerActivated{})

	// run 2: key, door, correct guess
	m.Dispatch(machine.StartActivated{})
	m.Dispatch(machine.KeyCollected{})
	m.Dispatch(machine.DoorEntered{})
	m.Dispatch(machine.DoorTouched{Index: m.Level2().CorrectDoor})
	m.AdvanceBy(machine.DefaultRules().WinDelay)

	assert.Equal(t, 2, rec.plays)
	assert.Equal(t, []int{10}, rec.losses)
	assert.Equal(t, []int{10}, rec.wins)
}

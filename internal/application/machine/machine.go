// Package machine implements the scene state machine that drives the game.
//
// The machine owns the active scene identifier and the transient state of
// the two gameplay levels. Scenes translate input and overlaps into Events;
// the machine applies the transition table, schedules delayed transitions
// and notifies listeners whenever the active scene changes.
package machine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/younwookim/labyrinth/internal/application/state"
)

// Rules holds the tunable numbers of the transition table
type Rules struct {
	KeyScore   int           // points for collecting the Level1 key
	DoorCount  int           // doors in Level2
	Attempts   int           // wrong guesses allowed in Level2
	WinDelay   time.Duration // correct door -> Win
	LoseDelay  time.Duration // last wrong door -> GameOver
	ResetDelay time.Duration // wrong door -> doors reset
}

// DefaultRules returns the stock game rules
func DefaultRules() Rules {
	return Rules{
		KeyScore:   10,
		DoorCount:  4,
		Attempts:   2,
		WinDelay:   500 * time.Millisecond,
		LoseDelay:  500 * time.Millisecond,
		ResetDelay: 1000 * time.Millisecond,
	}
}

// Transition describes a change of the active scene
type Transition struct {
	From  state.SceneID
	To    state.SceneID
	Epoch uint64 // epoch of the new scene
	Score int    // score of the current run
}

// Machine is the scene state machine. It is not safe for concurrent use;
// everything runs on the game loop goroutine.
type Machine struct {
	rules Rules
	rng   *rand.Rand
	log   zerolog.Logger
	sched *Scheduler

	current state.SceneID
	level1  *Level1State
	level2  *Level2State
	score   int
	reset   *Task // pending door reset, if any

	listeners []func(Transition)
}

// New creates a machine in the Menu scene
func New(rules Rules, rng *rand.Rand, logger zerolog.Logger) *Machine {
	if rules.DoorCount <= 0 {
		rules.DoorCount = DefaultRules().DoorCount
	}
	if rules.Attempts <= 0 {
		rules.Attempts = DefaultRules().Attempts
	}
	return &Machine{
		rules:   rules,
		rng:     rng,
		log:     logger.With().Str("component", "machine").Logger(),
		sched:   NewScheduler(),
		current: state.SceneMenu,
	}
}

// Current returns the active scene
func (m *Machine) Current() state.SceneID {
	return m.current
}

// Epoch returns the epoch of the active scene
func (m *Machine) Epoch() uint64 {
	return m.sched.Epoch()
}

// Level1 returns the Level1 state, or nil outside Level1
func (m *Machine) Level1() *Level1State {
	return m.level1
}

// Level2 returns the Level2 state, or nil outside Level2
func (m *Machine) Level2() *Level2State {
	return m.level2
}

// Score returns the score of the current run
func (m *Machine) Score() int {
	return m.score
}

// PendingTasks returns the number of delayed actions waiting to fire
func (m *Machine) PendingTasks() int {
	return m.sched.Pending()
}

// OnTransition registers a listener called after every scene change
func (m *Machine) OnTransition(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}

// Advance moves the delayed-action clock by dt seconds
func (m *Machine) Advance(dt float64) {
	m.sched.Advance(dt)
}

// AdvanceBy moves the delayed-action clock by d
func (m *Machine) AdvanceBy(d time.Duration) {
	m.sched.AdvanceBy(d)
}

// Dispatch applies ev to the active scene.
// Returns false when the event has no effect in the current scene.
func (m *Machine) Dispatch(ev Event) bool {
	handled := false
	switch m.current {
	case state.SceneMenu:
		handled = m.onMenu(ev)
	case state.SceneLevel1:
		handled = m.onLevel1(ev)
	case state.SceneLevel2:
		handled = m.onLevel2(ev)
	default:
		if m.current.IsEnding() {
			handled = m.onEnding(ev)
		}
	}
	if !handled {
		m.log.Debug().Stringer("scene", m.current).Stringer("event", ev).Msg("event ignored")
	}
	return handled
}

func (m *Machine) onMenu(ev Event) bool {
	if _, ok := ev.(StartActivated); ok {
		m.score = 0
		m.enter(state.SceneLevel1)
		return true
	}
	return false
}

func (m *Machine) onLevel1(ev Event) bool {
	l1 := m.level1
	switch ev.(type) {
	case KeyCollected:
		if !l1.KeyPresent {
			return false
		}
		l1.Score += m.rules.KeyScore
		l1.HasKey = true
		l1.KeyPresent = false
		m.score = l1.Score
		m.log.Info().Int("score", l1.Score).Msg("key collected")
		return true
	case DoorEntered:
		if !l1.HasKey {
			return false
		}
		m.enter(state.SceneLevel2)
		return true
	case EnemyContact:
		m.enter(state.SceneGameOver)
		return true
	}
	return false
}

func (m *Machine) onLevel2(ev Event) bool {
	switch e := ev.(type) {
	case DoorTouched:
		return m.touchDoor(e.Index)
	case EnemyContact:
		m.enter(state.SceneGameOver)
		return true
	}
	return false
}

func (m *Machine) onEnding(ev Event) bool {
	if _, ok := ev.(PointerActivated); ok {
		m.enter(state.SceneMenu)
		return true
	}
	return false
}

// touchDoor resolves a Level2 door overlap. The clicked flag is set before
// any delayed action is scheduled so repeated overlaps are ignored.
func (m *Machine) touchDoor(index int) bool {
	l2 := m.level2
	if !l2.validDoor(index) || l2.Doors[index].Clicked {
		return false
	}
	door := &l2.Doors[index]
	door.Clicked = true

	if l2.IsCorrect(index) {
		door.Marker = MarkerCorrect
		m.log.Info().Int("door", index).Msg("correct door")
		// markers stay up until the win
		m.cancelReset()
		m.sched.After(m.rules.WinDelay, "win", func() { m.enter(state.SceneWin) })
		return true
	}

	door.Marker = MarkerWrong
	if l2.Attempts == 0 {
		// game over already scheduled
		return true
	}
	l2.Attempts--
	m.log.Info().Int("door", index).Int("attempts", l2.Attempts).Msg("wrong door")

	m.cancelReset()
	if l2.Attempts == 0 {
		m.sched.After(m.rules.LoseDelay, "game-over", func() { m.enter(state.SceneGameOver) })
	} else {
		m.reset = m.sched.After(m.rules.ResetDelay, "reset-doors", m.ResetDoors)
	}
	return true
}

// cancelReset drops the pending door reset
func (m *Machine) cancelReset() {
	if m.reset != nil {
		m.reset.Cancel()
		m.reset = nil
	}
}

// ResetDoors clears every Level2 door and draws a new correct door.
// Attempts are left unchanged. No-op outside Level2.
func (m *Machine) ResetDoors() {
	if m.level2 == nil {
		return
	}
	m.level2.clearDoors()
	m.level2.CorrectDoor = m.rng.Intn(len(m.level2.Doors))
	m.log.Debug().Int("attempts", m.level2.Attempts).Msg("doors reset")
}

// SpawnKey replaces any key in Level1 with a fresh one and clears HasKey.
// Level1 entry already spawns the first key; this is the respawn hook.
// Returns false outside Level1.
func (m *Machine) SpawnKey() bool {
	if m.level1 == nil {
		return false
	}
	m.level1.KeyPresent = true
	m.level1.HasKey = false
	m.level1.Spawns++
	return true
}

// enter switches the active scene. Pending tasks of the old scene are
// invalidated and the old scene's state is discarded.
func (m *Machine) enter(to state.SceneID) {
	from := m.current
	epoch := m.sched.Invalidate()
	m.reset = nil

	m.level1 = nil
	m.level2 = nil
	switch to {
	case state.SceneLevel1:
		m.level1 = &Level1State{KeyPresent: true, Spawns: 1}
	case state.SceneLevel2:
		m.level2 = &Level2State{
			CorrectDoor: m.rng.Intn(m.rules.DoorCount),
			Attempts:    m.rules.Attempts,
			Doors:       make([]DoorStatus, m.rules.DoorCount),
		}
	}
	m.current = to

	m.log.Info().
		Stringer("from", from).
		Stringer("to", to).
		Uint64("epoch", epoch).
		Dur("at", m.sched.Now()).
		Msg("scene transition")

	t := Transition{From: from, To: to, Epoch: epoch, Score: m.score}
	for _, fn := range m.listeners {
		fn(t)
	}
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/labyrinth/internal/application/game"
	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/replay"
	"github.com/younwookim/labyrinth/internal/application/scene"
	"github.com/younwookim/labyrinth/internal/application/scene/ending"
	"github.com/younwookim/labyrinth/internal/application/scene/level1"
	"github.com/younwookim/labyrinth/internal/application/scene/level2"
	"github.com/younwookim/labyrinth/internal/application/scene/menu"
	"github.com/younwookim/labyrinth/internal/application/state"
	"github.com/younwookim/labyrinth/internal/application/system"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
	"github.com/younwookim/labyrinth/internal/infrastructure/storage"
)

// loadConfig reads the embedded configs, or dir when set
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// rulesFromConfig converts the rules section of game.json
func rulesFromConfig(c config.RulesConfig) machine.Rules {
	return machine.Rules{
		KeyScore:   c.KeyScore,
		DoorCount:  c.DoorCount,
		Attempts:   c.Attempts,
		WinDelay:   time.Duration(c.WinDelayMs) * time.Millisecond,
		LoseDelay:  time.Duration(c.LoseDelayMs) * time.Millisecond,
		ResetDelay: time.Duration(c.ResetDelayMs) * time.Millisecond,
	}
}

// factories maps every scene to its constructor
func factories() map[state.SceneID]scene.Factory {
	return map[state.SceneID]scene.Factory{
		state.SceneMenu:     menu.New,
		state.SceneLevel1:   level1.New,
		state.SceneLevel2:   level2.New,
		state.SceneGameOver: ending.NewGameOver,
		state.SceneWin:      ending.NewWin,
	}
}

// App wires the machine, the scenes and the optional recorder/replayer
// into an ebiten.Game
type App struct {
	*game.Game
	ctx      *scene.Context
	recorder *replay.Recorder
	replayer *replay.Replayer
}

// NewApp builds the game. input is wrapped in a recorder when rec is set;
// stats may be nil.
func NewApp(cfg *config.GameConfig, input system.InputSource, seed int64,
	stats *storage.StatsStore, logger zerolog.Logger, rec *replay.Recorder) (*App, error) {
	rng := rand.New(rand.NewSource(seed))
	m := machine.New(rulesFromConfig(cfg.Settings.Rules), rng, logger)
	if stats != nil {
		game.TrackStats(m, stats)
	}

	app := &App{recorder: rec}
	if rp, ok := input.(*replay.Replayer); ok {
		app.replayer = rp
	}
	if rec != nil {
		input = replay.NewRecordingSource(input, rec)
	}

	app.ctx = &scene.Context{
		Machine: m,
		Config:  cfg,
		Input:   input,
		Rand:    rng,
		Log:     logger,
		Stats:   stats,
	}

	d := cfg.Settings.Display
	g, err := game.New(app.ctx, factories(), d.ScreenWidth, d.ScreenHeight)
	if err != nil {
		return nil, err
	}
	if d.Framerate > 0 {
		g.SetDT(1.0 / float64(d.Framerate))
	}
	app.Game = g
	return app, nil
}

// Update stops the loop once a replay has been fully played
func (a *App) Update() error {
	if a.replayer != nil && a.replayer.Finished() {
		return ebiten.Termination
	}
	return a.Game.Update()
}

// Machine returns the scene state machine
func (a *App) Machine() *machine.Machine {
	return a.ctx.Machine
}

// SaveRecording writes the recorded input, if any, to filename
func (a *App) SaveRecording(filename string) (int, error) {
	if a.recorder == nil {
		return 0, nil
	}
	a.recorder.Stop()
	if err := a.recorder.Save(filename); err != nil {
		return 0, err
	}
	return a.recorder.FrameCount(), nil
}

// isTermination reports whether err is the regular end of the loop
func isTermination(err error) bool {
	return err == nil || errors.Is(err, ebiten.Termination)
}

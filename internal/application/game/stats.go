package game

import (
	"github.com/younwookim/labyrinth/internal/application/machine"
	"github.com/younwookim/labyrinth/internal/application/state"
)

// StatsRecorder receives the outcome of every run
type StatsRecorder interface {
	RecordPlay()
	RecordWin(score int)
	RecordLoss(score int)
}

// TrackStats feeds machine transitions into rec: a play when a run enters
// its first level, a win or a loss when a run ends.
func TrackStats(m *machine.Machine, rec StatsRecorder) {
	m.OnTransition(func(t machine.Transition) {
		switch {
		case t.To.IsLevel() && !t.From.IsLevel():
			rec.RecordPlay()
		case t.To == state.SceneWin:
			rec.RecordWin(t.Score)
		case t.To.IsEnding():
			rec.RecordLoss(t.Score)
		}
	})
}

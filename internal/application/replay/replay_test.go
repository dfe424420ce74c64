package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labyrinth/internal/application/system"
)

// idleReplayData creates replay data for an idle player
func idleReplayData(frames int, seed int64) ReplayData {
	data := ReplayData{Version: FormatVersion, Seed: seed, Frames: make([]FrameInput, frames)}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42)

	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{PointerPressed: true, PointerX: 400, PointerY: 400})

	require.Equal(t, 2, r.FrameCount())
	data := r.data
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.True(t, data.Frames[0].L)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].P)
	assert.Equal(t, 400, data.Frames[1].PX)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder(1)
	r.RecordFrame(system.InputState{Left: true})

	r.Stop()
	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 1, r.FrameCount())
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1)
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder(7)
	frames := []system.InputState{
		{Right: true},
		{Right: true, Down: true},
		{PointerPressed: true, PointerX: 12, PointerY: 34},
	}
	for _, f := range frames {
		r.RecordFrame(f)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)

	rp := NewReplayer(*data)
	assert.Equal(t, 3, rp.TotalFrames())
	assert.Equal(t, int64(7), rp.Seed())
	for _, want := range frames {
		assert.Equal(t, want, rp.Poll())
	}
	assert.True(t, rp.Finished())
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplayer_Next(t *testing.T) {
	rp := NewReplayer(idleReplayData(2, 99))
	assert.Equal(t, int64(99), rp.Seed())

	_, ok := rp.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, rp.CurrentFrame())
	_, ok = rp.Next()
	assert.True(t, ok)
	in, ok := rp.Next()
	assert.False(t, ok)
	assert.Equal(t, system.InputState{}, in)
	assert.True(t, rp.Finished())
	assert.Equal(t, 2, rp.CurrentFrame())
}

func TestRecordingSource(t *testing.T) {
	src := &system.ScriptedInput{}
	src.Push(system.InputState{Up: true}, system.InputState{Down: true})
	r := NewRecorder(3)
	rs := NewRecordingSource(src, r)

	assert.True(t, rs.Poll().Up)
	assert.True(t, rs.Poll().Down)
	rs.Poll()

	require.Equal(t, 3, r.FrameCount())
	assert.True(t, r.data.Frames[0].U)
	assert.True(t, r.data.Frames[1].D)
	assert.Equal(t, FrameInput{F: 2}, r.data.Frames[2])
}

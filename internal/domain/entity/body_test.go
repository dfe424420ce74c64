package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"apart vertically", Rect{X: 0, Y: 11, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 300, Y: 360, W: 200, H: 80}

	assert.True(t, r.Contains(400, 400))
	assert.True(t, r.Contains(300, 360))
	assert.False(t, r.Contains(500, 400), "right edge is exclusive")
	assert.False(t, r.Contains(10, 10))
}

func TestBody_BoundsAreCentred(t *testing.T) {
	b := Body{X: 100, Y: 50, W: 32, H: 16}

	assert.Equal(t, Rect{X: 84, Y: 42, W: 32, H: 16}, b.Bounds())
}

func TestBody_Step(t *testing.T) {
	b := Body{X: 100, Y: 100}
	b.SetVelocity(160, -160)

	b.Step(0.5)

	assert.InDelta(t, 180.0, b.X, 1e-9)
	assert.InDelta(t, 20.0, b.Y, 1e-9)
}

func TestBody_Overlaps(t *testing.T) {
	player := NewPlayer(100, 100, 32, 32, 0.2)
	key := NewKey(120, 110, 24, 24)
	door := NewDoor(0, 500, 200, 48, 64)

	assert.True(t, player.Overlaps(&key.Body))
	assert.False(t, player.Overlaps(&door.Body))
}

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(3, 400, 200, 32, 32, 100, 100)

	assert.Equal(t, EntityID(3), e.ID)
	assert.True(t, e.Active)
	assert.Equal(t, 1.0, e.Bounce)
	assert.Equal(t, 100.0, e.VX)
}

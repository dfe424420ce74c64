package system

import (
	"github.com/younwookim/labyrinth/internal/domain/entity"
)

// MovementSystem integrates velocities and keeps bodies inside the world
type MovementSystem struct {
	bounds entity.Rect
}

// NewMovementSystem creates a movement system for the given world bounds
func NewMovementSystem(bounds entity.Rect) *MovementSystem {
	return &MovementSystem{bounds: bounds}
}

// MovePlayer moves the player and clamps it to the world bounds
func (s *MovementSystem) MovePlayer(player *entity.Player, dt float64) {
	player.Step(dt)
	s.keepInside(&player.Body)
}

// MoveEnemies moves every active enemy, bouncing off the world bounds
func (s *MovementSystem) MoveEnemies(enemies []*entity.Enemy, dt float64) {
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		e.Step(dt)
		s.keepInside(&e.Body)
	}
}

// CollideEnemies separates overlapping enemies and exchanges their
// velocity along the axis of least penetration (equal-mass elastic bounce)
func (s *MovementSystem) CollideEnemies(enemies []*entity.Enemy) {
	for i := 0; i < len(enemies); i++ {
		a := enemies[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < len(enemies); j++ {
			b := enemies[j]
			if !b.Active || !a.Overlaps(&b.Body) {
				continue
			}
			separate(&a.Body, &b.Body)
		}
	}
}

func separate(a, b *entity.Body) {
	ra, rb := a.Bounds(), b.Bounds()
	overlapX := min(ra.Right(), rb.Right()) - max(ra.X, rb.X)
	overlapY := min(ra.Bottom(), rb.Bottom()) - max(ra.Y, rb.Y)

	if overlapX < overlapY {
		half := overlapX / 2
		if a.X < b.X {
			a.X -= half
			b.X += half
		} else {
			a.X += half
			b.X -= half
		}
		a.VX, b.VX = b.VX, a.VX
		return
	}

	half := overlapY / 2
	if a.Y < b.Y {
		a.Y -= half
		b.Y += half
	} else {
		a.Y += half
		b.Y -= half
	}
	a.VY, b.VY = b.VY, a.VY
}

// keepInside clamps the body to the bounds and reflects the velocity
// component that hit an edge, scaled by the body's Bounce
func (s *MovementSystem) keepInside(b *entity.Body) {
	halfW, halfH := b.W/2, b.H/2
	minX, maxX := s.bounds.X+halfW, s.bounds.Right()-halfW
	minY, maxY := s.bounds.Y+halfH, s.bounds.Bottom()-halfH

	if b.X < minX {
		b.X = minX
		if b.VX < 0 {
			b.VX = -b.VX * b.Bounce
		}
	} else if b.X > maxX {
		b.X = maxX
		if b.VX > 0 {
			b.VX = -b.VX * b.Bounce
		}
	}

	if b.Y < minY {
		b.Y = minY
		if b.VY < 0 {
			b.VY = -b.VY * b.Bounce
		}
	} else if b.Y > maxY {
		b.Y = maxY
		if b.VY > 0 {
			b.VY = -b.VY * b.Bounce
		}
	}
}

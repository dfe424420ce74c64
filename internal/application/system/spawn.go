package system

import (
	"math/rand"

	"github.com/younwookim/labyrinth/internal/domain/entity"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
)

// Between returns a uniformly distributed integer in [lo, hi]
func Between(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// RandomPoint returns a point uniformly distributed inside area, edges included
func RandomPoint(rng *rand.Rand, area config.RectConfig) (x, y int) {
	x = Between(rng, area.X, area.X+area.W)
	y = Between(rng, area.Y, area.Y+area.H)
	return x, y
}

// RandomVelocity draws both velocity components independently from [lo, hi]
func RandomVelocity(rng *rand.Rand, lo, hi int) (vx, vy float64) {
	vx = float64(Between(rng, lo, hi))
	vy = float64(Between(rng, lo, hi))
	return vx, vy
}

// SpawnEnemies creates the enemies of a level. Spawns with a random range
// draw their velocity from rng; the others use their fixed velocity.
func SpawnEnemies(spawns []config.EnemySpawn, size config.SizeConfig, rng *rand.Rand) []*entity.Enemy {
	enemies := make([]*entity.Enemy, 0, len(spawns))
	for i, sp := range spawns {
		vx, vy := float64(sp.VX), float64(sp.VY)
		if sp.Random != nil {
			vx, vy = RandomVelocity(rng, sp.Random.Min, sp.Random.Max)
		}
		enemies = append(enemies, entity.NewEnemy(
			entity.EntityID(i+1),
			float64(sp.X), float64(sp.Y),
			size.Width, size.Height,
			vx, vy,
		))
	}
	return enemies
}

// SpawnDoors creates one door per configured position, indexed in order
func SpawnDoors(positions []config.PositionConfig, size config.SizeConfig) []*entity.Door {
	doors := make([]*entity.Door, 0, len(positions))
	for i, p := range positions {
		doors = append(doors, entity.NewDoor(i, float64(p.X), float64(p.Y), size.Width, size.Height))
	}
	return doors
}

// WorldBounds converts a level's bounds into an entity rectangle
func WorldBounds(r config.RectConfig) entity.Rect {
	return entity.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

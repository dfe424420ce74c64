package system

import "github.com/younwookim/labyrinth/internal/domain/entity"

// TouchingEnemy reports whether the player overlaps any active enemy
func TouchingEnemy(player *entity.Player, enemies []*entity.Enemy) bool {
	for _, e := range enemies {
		if e.Active && player.Overlaps(&e.Body) {
			return true
		}
	}
	return false
}

// TouchedDoors returns the indexes of the doors the player overlaps, in order
func TouchedDoors(player *entity.Player, doors []*entity.Door) []int {
	var touched []int
	for _, d := range doors {
		if player.Overlaps(&d.Body) {
			touched = append(touched, d.Index)
		}
	}
	return touched
}

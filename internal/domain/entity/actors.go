package entity

// Player is the character controlled with the arrow keys
type Player struct {
	Body
}

// NewPlayer creates a player centred at x, y
func NewPlayer(x, y, w, h, bounce float64) *Player {
	return &Player{Body: Body{X: x, Y: y, W: w, H: h, Bounce: bounce}}
}

// Enemy is a bouncing hazard; touching one ends the game
type Enemy struct {
	ID EntityID
	Body
	Active bool
}

// NewEnemy creates an active, perfectly elastic enemy
func NewEnemy(id EntityID, x, y, w, h, vx, vy float64) *Enemy {
	return &Enemy{
		ID:     id,
		Body:   Body{X: x, Y: y, W: w, H: h, VX: vx, VY: vy, Bounce: 1},
		Active: true,
	}
}

// Key is the Level1 collectable
type Key struct {
	Body
}

// NewKey creates a key centred at x, y
func NewKey(x, y, w, h float64) *Key {
	return &Key{Body: Body{X: x, Y: y, W: w, H: h}}
}

// Door is a static door. In Level2 Index addresses the machine's door status.
type Door struct {
	Index int
	Body
}

// NewDoor creates a door centred at x, y
func NewDoor(index int, x, y, w, h float64) *Door {
	return &Door{Index: index, Body: Body{X: x, Y: y, W: w, H: h}}
}

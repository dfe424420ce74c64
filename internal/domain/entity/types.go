package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileWall
)

// Tile represents a single tile of a level's ground layer
type Tile struct {
	Type TileType
}

// Stage is the decorative tile grid of a level
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileEmpty}
	}
	return s.Tiles[ty][tx]
}

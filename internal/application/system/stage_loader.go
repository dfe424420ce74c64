package system

import (
	"github.com/younwookim/labyrinth/internal/domain/entity"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
)

// LoadStage converts a level's ground layer into a Stage.
// Returns nil when the level has no ground rows.
func LoadStage(cfg config.GroundConfig) *entity.Stage {
	if len(cfg.Rows) == 0 || cfg.TileSize <= 0 {
		return nil
	}

	tileWidth := 0
	for _, row := range cfg.Rows {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}
	tileHeight := len(cfg.Rows)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Rows {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			mapping, ok := cfg.Tiles[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty}
				x++
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "ground":
				tileType = entity.TileGround
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{Type: tileType}
			x++
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
	}
}

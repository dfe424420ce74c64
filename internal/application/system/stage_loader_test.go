package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labyrinth/internal/domain/entity"
	"github.com/younwookim/labyrinth/internal/infrastructure/config"
)

func TestLoadStage(t *testing.T) {
	t.Run("loads basic ground", func(t *testing.T) {
		cfg := config.GroundConfig{
			TileSize: 50,
			Rows: []string{
				"###",
				"#.#",
				"###",
			},
			Tiles: map[string]config.TileMapping{
				"#": {Type: "wall"},
				".": {Type: "ground"},
			},
		}

		stage := LoadStage(cfg)

		require.NotNil(t, stage)
		assert.Equal(t, 3, stage.Width)
		assert.Equal(t, 3, stage.Height)
		assert.Equal(t, 50, stage.TileSize)
		assert.Equal(t, entity.TileWall, stage.GetTile(0, 0).Type)
		assert.Equal(t, entity.TileGround, stage.GetTile(1, 1).Type)
	})

	t.Run("ragged rows are padded", func(t *testing.T) {
		cfg := config.GroundConfig{
			TileSize: 10,
			Rows:     []string{"#", "###"},
			Tiles:    map[string]config.TileMapping{"#": {Type: "wall"}},
		}

		stage := LoadStage(cfg)

		require.NotNil(t, stage)
		assert.Equal(t, 3, stage.Width)
		assert.Equal(t, entity.TileEmpty, stage.GetTile(2, 0).Type)
		assert.Equal(t, entity.TileWall, stage.GetTile(2, 1).Type)
	})

	t.Run("unknown characters are empty", func(t *testing.T) {
		cfg := config.GroundConfig{TileSize: 10, Rows: []string{"?"}}

		stage := LoadStage(cfg)

		require.NotNil(t, stage)
		assert.Equal(t, entity.TileEmpty, stage.GetTile(0, 0).Type)
	})

	t.Run("no ground", func(t *testing.T) {
		assert.Nil(t, LoadStage(config.GroundConfig{}))
	})
}

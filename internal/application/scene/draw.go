package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/labyrinth/internal/domain/entity"
)

// Shared palette
var (
	ColorBG     = color.RGBA{26, 26, 46, 255}
	ColorWall   = color.RGBA{80, 80, 100, 255}
	ColorGround = color.RGBA{40, 60, 45, 255}
	ColorPlayer = color.RGBA{100, 200, 100, 255}
	ColorEnemy  = color.RGBA{200, 100, 100, 255}
	ColorKey    = color.RGBA{255, 215, 0, 255}
	ColorDoor   = color.RGBA{140, 90, 50, 255}
	ColorText   = color.RGBA{255, 255, 255, 255}
	ColorButton = color.RGBA{70, 110, 180, 255}
)

// ParseColor parses "#rrggbb". Anything else yields fallback.
func ParseColor(hex string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}

// DrawBody fills a body's box
func DrawBody(screen *ebiten.Image, b *entity.Body, c color.Color) {
	r := b.Bounds()
	ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, c)
}

// DrawStage draws the ground layer. A nil stage draws nothing.
func DrawStage(screen *ebiten.Image, stage *entity.Stage) {
	if stage == nil {
		return
	}
	ts := float64(stage.TileSize)
	for ty := 0; ty < stage.Height; ty++ {
		for tx := 0; tx < stage.Width; tx++ {
			var c color.Color
			switch stage.GetTile(tx, ty).Type {
			case entity.TileWall:
				c = ColorWall
			case entity.TileGround:
				c = ColorGround
			default:
				continue
			}
			ebitenutil.DrawRect(screen, float64(tx)*ts, float64(ty)*ts, ts, ts, c)
		}
	}
}

// CenterText prints msg horizontally centred around y.
// The debug font is 6 pixels wide per glyph.
func CenterText(screen *ebiten.Image, msg string, screenW, y int) {
	w := len([]rune(msg)) * 6
	ebitenutil.DebugPrintAt(screen, msg, (screenW-w)/2, y)
}

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/cavegen"
	"golang.org/x/image/draw"
)

// renderPreview draws the level at one pixel per tile, marks spawns, then
// scales the result up by scale with nearest-neighbour sampling.
func renderPreview(level *cavegen.Level, scale int) *image.RGBA {
	g := level.Grid
	small := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := config.Render.FloorColor
			if t, _ := g.At(x, y); t == cavegen.Wall {
				c = config.Render.WallColor
			}
			small.SetRGBA(x, y, c)
		}
	}

	mark := func(p cavegen.Point, c color.RGBA) {
		x, y := cavegen.WorldToTile(p, level.TileSize)
		small.SetRGBA(x, y, c)
	}
	for _, e := range level.Spawns.Enemies {
		mark(e, config.Render.EnemyColor)
	}
	mark(level.Spawns.Player, config.Render.PlayerColor)

	big := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
	return big
}

func writePreview(w io.Writer, level *cavegen.Level, scale int) error {
	return png.Encode(w, renderPreview(level, scale))
}

// asciiDump renders the grid with '#' walls and '.' floor, 'P' on the player
// spawn and 'E' on enemy spawns.
func asciiDump(level *cavegen.Level) string {
	rows := strings.Split(level.Grid.String(), "\n")
	put := func(p cavegen.Point, c byte) {
		x, y := cavegen.WorldToTile(p, level.TileSize)
		if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
			row := []byte(rows[y])
			row[x] = c
			rows[y] = string(row)
		}
	}
	for _, e := range level.Spawns.Enemies {
		put(e, 'E')
	}
	put(level.Spawns.Player, 'P')
	return strings.Join(rows, "\n")
}

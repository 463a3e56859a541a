package leveldata

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/cavern/shared/cavegen"
)

// XML shapes for the subset of the TMX format we write. Only walls are
// stored as tiles (gid 1); floor is the empty tile.
type tmxMap struct {
	XMLName      xml.Name       `xml:"map"`
	Version      string         `xml:"version,attr"`
	Orientation  string         `xml:"orientation,attr"`
	RenderOrder  string         `xml:"renderorder,attr"`
	Width        int            `xml:"width,attr"`
	Height       int            `xml:"height,attr"`
	TileWidth    int            `xml:"tilewidth,attr"`
	TileHeight   int            `xml:"tileheight,attr"`
	Infinite     int            `xml:"infinite,attr"`
	NextLayerID  int            `xml:"nextlayerid,attr"`
	NextObjectID int            `xml:"nextobjectid,attr"`
	Properties   []tmxProperty  `xml:"properties>property"`
	Tileset      tmxTileset     `xml:"tileset"`
	Layer        tmxLayer       `xml:"layer"`
	ObjectGroup  tmxObjectGroup `xml:"objectgroup"`
}

type tmxProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Value string `xml:"value,attr"`
}

type tmxTileset struct {
	FirstGID   int      `xml:"firstgid,attr"`
	Name       string   `xml:"name,attr"`
	TileWidth  int      `xml:"tilewidth,attr"`
	TileHeight int      `xml:"tileheight,attr"`
	TileCount  int      `xml:"tilecount,attr"`
	Columns    int      `xml:"columns,attr"`
	Image      tmxImage `xml:"image"`
}

type tmxImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type tmxLayer struct {
	ID     int     `xml:"id,attr"`
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   tmxData `xml:"data"`
}

type tmxData struct {
	Encoding string `xml:"encoding,attr"`
	CSV      string `xml:",chardata"`
}

type tmxObjectGroup struct {
	ID      int         `xml:"id,attr"`
	Name    string      `xml:"name,attr"`
	Objects []tmxObject `xml:"object"`
}

type tmxObject struct {
	ID         int           `xml:"id,attr"`
	Name       string        `xml:"name,attr"`
	X          float64       `xml:"x,attr"`
	Y          float64       `xml:"y,attr"`
	Properties []tmxProperty `xml:"properties>property"`
}

const wallGID = 1

// WriteTMX writes the level as an orthogonal TMX map: walls in the wg-tiles
// layer, player and enemy spawns as named objects in the Spawns group. TMX
// tiles are whole pixels, so a fractional tile size is rejected.
func WriteTMX(w io.Writer, data *CollisionData) error {
	if data == nil || data.Grid == nil {
		return fmt.Errorf("write TMX: no grid: %w", cavegen.ErrInvalidConfig)
	}
	g := data.Grid
	if !(data.TileSize >= 1) || math.IsInf(data.TileSize, 0) || data.TileSize != math.Trunc(data.TileSize) {
		return fmt.Errorf("write TMX: tile size %v: %w", data.TileSize, cavegen.ErrInvalidConfig)
	}
	ts := int(data.TileSize)

	m := tmxMap{
		Version:     "1.10",
		Orientation: "orthogonal",
		RenderOrder: "right-down",
		Width:       g.Width(),
		Height:      g.Height(),
		TileWidth:   ts,
		TileHeight:  ts,
		NextLayerID: 3,
		Properties: []tmxProperty{
			{Name: "seed", Value: strconv.FormatInt(data.Seed, 10)},
		},
		Tileset: tmxTileset{
			FirstGID:   wallGID,
			Name:       "cave",
			TileWidth:  ts,
			TileHeight: ts,
			TileCount:  1,
			Columns:    1,
			Image:      tmxImage{Source: "cave.png", Width: ts, Height: ts},
		},
		Layer: tmxLayer{
			ID:     1,
			Name:   SolidLayerName,
			Width:  g.Width(),
			Height: g.Height(),
			Data:   tmxData{Encoding: "csv", CSV: encodeCSV(g)},
		},
		ObjectGroup: tmxObjectGroup{ID: 2, Name: SpawnGroupName},
	}

	nextID := 1
	m.ObjectGroup.Objects = append(m.ObjectGroup.Objects, tmxObject{
		ID:   nextID,
		Name: PlayerObjectName,
		X:    data.PlayerSpawn.X,
		Y:    data.PlayerSpawn.Y,
	})
	nextID++
	for _, e := range data.EnemySpawns {
		m.ObjectGroup.Objects = append(m.ObjectGroup.Objects, tmxObject{
			ID:   nextID,
			Name: EnemyObjectName,
			X:    e.X,
			Y:    e.Y,
			Properties: []tmxProperty{
				{Name: "spawnIndex", Type: "int", Value: strconv.Itoa(e.Index)},
			},
		})
		nextID++
	}
	m.NextObjectID = nextID

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write TMX: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("write TMX: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write TMX: %w", err)
	}
	return nil
}

func encodeCSV(g *cavegen.Grid) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			gid := 0
			if t, _ := g.At(x, y); t == cavegen.Wall {
				gid = wallGID
			}
			sb.WriteString(strconv.Itoa(gid))
			if x < g.Width()-1 || y < g.Height()-1 {
				sb.WriteByte(',')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package smroom

import (
	"image"

	"smroomcore/internal/gfx"
)

// Vertex is one corner of an emitted quad: a pixel-space position and a
// texture coordinate into the tile-set atlas, both in the same raw pixel
// units (not normalized to [0,1]) — matching getQuadsVertexArray, which
// scales both axes by TILE_SIZE and never divides by the atlas dimensions.
type Vertex struct {
	X, Y float64
	TexU float64
	TexV float64
}

// Quad is four vertices, ordered the way a triangle-strip or two-triangle
// fan consumer expects: upper-left, upper-right, lower-left, lower-right.
type Quad struct {
	Vertices [4]Vertex
}

// GetQuads emits a layer 1 quad for every tile cell, preceded by a layer 2
// quad for each cell that has layer 2, matching the draw order the vanilla
// renderer uses so layer 1 always composites on top. tilesWide must match
// the atlas layout used to build the tile-set image passed to Atlas.
func (r *Room) GetQuads(tilesWide int) []Quad {
	if tilesWide < 1 {
		tilesWide = 1
	}

	var quads []Quad
	for i := range r.Tiles {
		for j := range r.Tiles[i] {
			tile := r.Tiles[i][j]
			if tile.HasLayer2 {
				quads = append(quads, layerQuad(tile.Layer2, i, j, tilesWide))
			}
			quads = append(quads, layerQuad(tile.Layer1, i, j, tilesWide))
		}
	}
	return quads
}

func layerQuad(layer TileLayer, i, j, tilesWide int) Quad {
	x0 := float64(i * TileSize)
	y0 := float64(j * TileSize)
	x1 := x0 + TileSize
	y1 := y0 + TileSize

	col := int(layer.Index) % tilesWide
	row := int(layer.Index) / tilesWide
	u0 := float64(col * TileSize)
	v0 := float64(row * TileSize)
	u1 := u0 + TileSize
	v1 := v0 + TileSize

	if layer.FlipH {
		u0, u1 = u1, u0
	}
	if layer.FlipV {
		v0, v1 = v1, v0
	}

	return Quad{Vertices: [4]Vertex{
		{X: x0, Y: y0, TexU: u0, TexV: v0},
		{X: x1, Y: y0, TexU: u1, TexV: v0},
		{X: x0, Y: y1, TexU: u0, TexV: v1},
		{X: x1, Y: y1, TexU: u1, TexV: v1},
	}}
}

// Atlas packs this room's tile set into a single grid image, tilesWide
// tiles per row, suitable for dumping or for use as the texture GetQuads'
// coordinates index into.
func (r *Room) Atlas(tilesWide int) *image.RGBA {
	return gfx.Atlas(r.TileSet, tilesWide)
}

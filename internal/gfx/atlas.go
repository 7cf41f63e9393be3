package gfx

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/jsummers/gobmp"
	ximagedraw "golang.org/x/image/draw"
)

// Atlas packs a tile set into a single grid image, tilesWide tiles per row,
// for dumping or display. Matching drawTileSet, the row count is
// len(tileSet)/tilesWide + 1, so a tile set that divides evenly into
// tilesWide gets one extra, empty row of padding.
func Atlas(tileSet []*image.RGBA, tilesWide int) *image.RGBA {
	if tilesWide < 1 {
		tilesWide = 1
	}
	rows := len(tileSet)/tilesWide + 1
	atlas := image.NewRGBA(image.Rect(0, 0, tilesWide*TileSize, rows*TileSize))

	for i, tile := range tileSet {
		col := i % tilesWide
		row := i / tilesWide
		dstRect := image.Rect(col*TileSize, row*TileSize, (col+1)*TileSize, (row+1)*TileSize)
		draw.Draw(atlas, dstRect, tile, image.Point{}, draw.Src)
	}
	return atlas
}

// DumpAtlasBMP encodes img as a Windows BMP to w.
func DumpAtlasBMP(w io.Writer, img image.Image) error {
	if err := gobmp.Encode(w, img); err != nil {
		return fmt.Errorf("gfx: encoding BMP: %w", err)
	}
	return nil
}

// ScaleAtlas returns a nearest-neighbor upscale of src by the given integer
// factor, preserving the hard pixel edges of the original 4bpp art.
func ScaleAtlas(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	ximagedraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, ximagedraw.Over, nil)
	return dst
}

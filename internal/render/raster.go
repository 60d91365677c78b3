package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"eca/internal/core"
)

// Image rasterizes the grid into an RGBA image where each cell becomes a
// block×block square: active cells take the on colour, inactive cells the
// off colour.
func Image(g *core.BitGrid, block int, on, off color.Color) (*image.RGBA, error) {
	if block <= 0 {
		return nil, fmt.Errorf("block size %d must be positive: %w", block, core.ErrInvalidArgument)
	}
	cellPix := make([]byte, 4*g.W*g.H)
	fillBinaryRGBA(cellPix, g.Cells(), on, off)

	img := image.NewRGBA(image.Rect(0, 0, g.W*block, g.H*block))
	for y := 0; y < g.H*block; y++ {
		src := cellPix[(y/block)*g.W*4 : (y/block+1)*g.W*4]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < g.W*block; x++ {
			copy(dst[x*4:x*4+4], src[(x/block)*4:(x/block)*4+4])
		}
	}
	return img, nil
}

// WritePNG rasterizes the grid with the default monochrome palette (black
// cells on a white background) and encodes it as PNG.
func WritePNG(w io.Writer, g *core.BitGrid, block int) error {
	img, err := Image(g, block, color.Black, color.White)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

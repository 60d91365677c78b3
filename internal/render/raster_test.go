package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"eca/internal/core"
)

func TestImageBlocks(t *testing.T) {
	g := core.NewBitGrid(2, 2)
	g.Set(0, 0, true)
	g.Set(1, 1, true)

	on := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img, err := Image(g, 3, on, off)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds %v, want 6x6", b)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := off
			if (x < 3) == (y < 3) {
				want = on
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageRejectsNonPositiveBlock(t *testing.T) {
	g := core.NewBitGrid(1, 1)
	for _, block := range []int{0, -2} {
		if _, err := Image(g, block, color.Black, color.White); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("block %d: got %v, want ErrInvalidArgument", block, err)
		}
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	g := core.NewBitGrid(3, 2)
	g.Set(1, 0, true)

	var buf bytes.Buffer
	if err := WritePNG(&buf, g, 4); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds %v, want 12x8", b)
	}
	r, g8, b8, _ := img.At(5, 2).RGBA()
	if r != 0 || g8 != 0 || b8 != 0 {
		t.Fatalf("active cell pixel not black: %v", img.At(5, 2))
	}
	r, g8, b8, _ = img.At(0, 0).RGBA()
	if r != 0xffff || g8 != 0xffff || b8 != 0xffff {
		t.Fatalf("inactive cell pixel not white: %v", img.At(0, 0))
	}
}

func TestWritePNGRejectsNonPositiveBlock(t *testing.T) {
	g := core.NewBitGrid(1, 1)
	var buf bytes.Buffer
	if err := WritePNG(&buf, g, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if buf.Len() != 0 {
		t.Fatal("failed rasterization wrote output")
	}
}

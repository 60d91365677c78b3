package core

import "testing"

func TestBitGridIndexing(t *testing.T) {
	g := NewBitGrid(3, 2)
	g.Set(2, 1, true)
	if !g.At(2, 1) {
		t.Fatal("Set(2,1) not visible through At")
	}
	if g.Index(2, 1) != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", g.Index(2, 1))
	}
	if !g.Cells()[5] {
		t.Fatal("backing slice does not reflect Set")
	}
	if got := g.Size(); got.W != 3 || got.H != 2 {
		t.Fatalf("Size() = %dx%d, want 3x2", got.W, got.H)
	}
}

func TestBitGridRender(t *testing.T) {
	g := NewBitGrid(3, 2)
	g.Set(1, 0, true)
	g.Set(0, 1, true)
	if got := g.Render('0', '1'); got != "010\n100" {
		t.Fatalf("Render = %q, want %q", got, "010\n100")
	}
	if got := g.Render('.', '#'); got != ".#.\n#.." {
		t.Fatalf("Render = %q, want %q", got, ".#.\n#..")
	}
}

func TestBitGridBoolsIsCopy(t *testing.T) {
	g := NewBitGrid(2, 2)
	g.Set(0, 0, true)
	out := g.Bools()
	out[0] = false
	out[3] = true
	if !g.At(0, 0) || g.At(1, 1) {
		t.Fatal("mutating the Bools copy changed the grid")
	}
}

func TestBitGridRowsShareStorage(t *testing.T) {
	g := NewBitGrid(2, 2)
	rows := g.Rows()
	rows[1][0] = true
	if !g.At(0, 1) {
		t.Fatal("Rows does not expose backing storage")
	}
}

func TestNewBitGridClampsDimensions(t *testing.T) {
	g := NewBitGrid(0, -4)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
}

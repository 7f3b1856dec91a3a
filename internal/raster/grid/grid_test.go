package grid

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestFixedBitsSetGet(t *testing.T) {
	fb := NewFixedBits(130)
	fb.Set(0, true)
	fb.Set(64, true)
	fb.Set(129, true)

	for _, i := range []int{0, 64, 129} {
		if !fb.Get(i) {
			t.Fatalf("bit %d expected set", i)
		}
	}
	if fb.Get(1) {
		t.Fatal("bit 1 should be unset")
	}
}

func TestFixedBitsExpandOneCrossesWordBoundary(t *testing.T) {
	fb := NewFixedBits(130)
	fb.Set(63, true)
	fb.ExpandOne()

	if !fb.Get(62) || !fb.Get(64) {
		t.Fatal("expand did not cross word boundary both directions")
	}
}

func TestFixedBitsFillRespectsTail(t *testing.T) {
	fb := NewFixedBits(70)
	fb.Fill(true)
	for i := 0; i < 70; i++ {
		if !fb.Get(i) {
			t.Fatalf("bit %d should be set after Fill(true)", i)
		}
	}
}

func TestGridFillWithPixelsAndForEachTrue(t *testing.T) {
	g := New(raster.NewSize(16, 16), 4)
	g.FillWithPixels(func(x, y int) bool { return x == 5 && y == 5 })

	found := 0
	g.ForEachTrue(func(c TrueCell) {
		found++
		if !(5 >= c.XStart && 5 < c.XEnd && 5 >= c.YStart && 5 < c.YEnd) {
			t.Fatalf("true cell %+v does not cover pixel (5,5)", c)
		}
	})
	if found != 1 {
		t.Fatalf("expected exactly 1 true cell, got %d", found)
	}
}

func TestGridExpandOneGrowsNeighborCells(t *testing.T) {
	g := New(raster.NewSize(32, 32), 4)
	g.Set(4, 4, true)
	g.ExpandOne()

	if !g.Get(3, 4) || !g.Get(5, 4) || !g.Get(4, 3) || !g.Get(4, 5) {
		t.Fatal("expand one did not set all 4-connected neighbors")
	}
}

// TestGridExpandOneDoesNotLeakAcrossRows guards against row-processing
// order corrupting a neighbor's pre-dilation input: with only row 1 set
// in a single-column, 4-row grid, row 3 must stay false after one
// expansion — only row 2 (row 1's true neighbor) should ever see it,
// never row 3, which is two rows away.
func TestGridExpandOneDoesNotLeakAcrossRows(t *testing.T) {
	g := New(raster.NewSize(4, 16), 4)
	g.Set(0, 1, true)
	g.ExpandOne()

	if !g.Get(0, 0) || !g.Get(0, 2) {
		t.Fatal("expand one did not set the true immediate neighbors")
	}
	if g.Get(0, 3) {
		t.Fatal("expand one leaked into row 3, two rows from the only true cell")
	}
}

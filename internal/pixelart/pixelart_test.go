package pixelart

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestAdvMame2xDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 3), raster.Gray{V: 1})
	out := AdvMame2x(src)
	if out.Size() != raster.NewSize(8, 6) {
		t.Fatalf("AdvMame2x size = %v, want 8x6", out.Size())
	}
}

func TestAdvMame2xFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 0.7})
	out := AdvMame2x(src)
	for _, p := range out.Data {
		if p.V != 0.7 {
			t.Fatalf("flat input should upscale to a flat output, got %v", p.V)
		}
	}
}

func TestAdvMame3xTriplesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(2, 2), raster.Gray{V: 1})
	out := AdvMame3x(src)
	if out.Size() != raster.NewSize(6, 6) {
		t.Fatalf("AdvMame3x size = %v, want 6x6", out.Size())
	}
}

func TestAdvMame4xQuadruplesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(3, 2), raster.Gray{V: 1})
	out := AdvMame4x(src)
	if out.Size() != raster.NewSize(12, 8) {
		t.Fatalf("AdvMame4x size = %v, want 12x8", out.Size())
	}
}

func TestEagle2xDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(5, 5), raster.Gray{V: 1})
	out := Eagle2x(src)
	if out.Size() != raster.NewSize(10, 10) {
		t.Fatalf("Eagle2x size = %v, want 10x10", out.Size())
	}
}

func TestEagle2xFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 0.3})
	out := Eagle2x(src)
	for _, p := range out.Data {
		if p.V != 0.3 {
			t.Fatalf("flat input should upscale to a flat output, got %v", p.V)
		}
	}
}

func TestEagle3xTriplesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(3, 3), raster.Gray{V: 1})
	out := Eagle3x(src)
	if out.Size() != raster.NewSize(9, 9) {
		t.Fatalf("Eagle3x size = %v, want 9x9", out.Size())
	}
}

func TestEagleCornerMajorityFillsCorner(t *testing.T) {
	// A single pixel whose left and top-left and top neighbors all match
	// the "D==A && A==B" rule should have its top-left output corner
	// take on that shared color rather than its own.
	src := raster.NewImageFromFunc(raster.NewSize(3, 3), func(x, y int) raster.Gray {
		if x == 1 && y == 1 {
			return raster.Gray{V: 0.9}
		}
		return raster.Gray{V: 0.1}
	})
	out := Eagle2x(src)
	// top-left output pixel of center cell (1,1) is at (2,2).
	if got := out.At(2, 2).V; got != 0.1 {
		t.Fatalf("expected corner majority fill of 0.1, got %v", got)
	}
}

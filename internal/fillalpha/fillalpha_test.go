package fillalpha

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func opaqueSquareOnTransparent(size int, x0, y0, x1, y1 int) raster.Image[raster.Vec4] {
	return raster.NewImageFromFunc(raster.NewSize(size, size), func(x, y int) raster.Vec4 {
		if x >= x0 && x < x1 && y >= y0 && y < y1 {
			return raster.Vec4{X: 1, Y: 1, Z: 1, W: 1}
		}
		return raster.Vec4{}
	})
}

func TestFillModeNearestFillsEveryPixel(t *testing.T) {
	img := opaqueSquareOnTransparent(8, 3, 3, 5, 5)
	Fill(&img, 0.5, Options{Mode: ModeNearest})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.At(x, y).W != 1 {
				t.Fatalf("pixel (%d,%d) left unfilled after ModeNearest", x, y)
			}
		}
	}
}

func TestFillModeNearestPreservesOriginalOpaqueColor(t *testing.T) {
	img := opaqueSquareOnTransparent(8, 3, 3, 5, 5)
	Fill(&img, 0.5, Options{Mode: ModeNearest})

	p := img.At(3, 3)
	if p.X != 1 || p.Y != 1 || p.Z != 1 {
		t.Fatalf("seed pixel color should be untouched, got %+v", p)
	}
}

func TestFillModeExtendColorFillsReachablePixels(t *testing.T) {
	img := opaqueSquareOnTransparent(12, 5, 5, 7, 7)
	Fill(&img, 0.5, Options{Mode: ModeExtendColor, Iterations: 12})

	if img.At(0, 0).W == 0 {
		t.Fatal("extend-color fill should have reached the corner within 12 iterations")
	}
}

func TestFillModeFragmentGrowsOpaqueCoverage(t *testing.T) {
	img := opaqueSquareOnTransparent(16, 6, 6, 10, 10)
	before := countOpaque(img)
	Fill(&img, 0.5, Options{Mode: ModeFragment, Iterations: 3, FragmentCount: 8})
	after := countOpaque(img)

	if after < before {
		t.Fatalf("fragment fill should not shrink opaque coverage: before=%d after=%d", before, after)
	}
}

func countOpaque(img raster.Image[raster.Vec4]) int {
	n := 0
	for _, p := range img.Data {
		if p.W != 0 {
			n++
		}
	}
	return n
}

func TestFillBinarizesAlphaAroundThreshold(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(2, 2), raster.Vec4{X: 1, W: 0.3})
	Fill(&img, 0.5, Options{Mode: ModeNearest})

	for _, p := range img.Data {
		if p.W != 0 && p.W != 1 {
			t.Fatalf("alpha should be binarized, got %v", p.W)
		}
	}
}

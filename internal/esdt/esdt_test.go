package esdt

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestESDFSolidWhiteStaysFullyInside(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(8, 8), raster.Gray{V: 1})
	out := ESDF(img, 4, 0, true, true)

	for _, p := range out.Data {
		if p.V < 0.99 {
			t.Fatalf("interior of a fully solid shape should read near 1, got %v", p.V)
		}
	}
}

func TestESDFSolidBlackStaysFullyOutside(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(8, 8), raster.Gray{V: 0})
	out := ESDF(img, 4, 0, true, true)

	for _, p := range out.Data {
		if p.V > 0.01 {
			t.Fatalf("a fully empty shape should read near 0 everywhere, got %v", p.V)
		}
	}
}

func TestESDFProducesMonotoneFalloffFromASquare(t *testing.T) {
	const n = 16
	img := raster.NewImageFromFunc(raster.NewSize(n, n), func(x, y int) raster.Gray {
		if x >= 6 && x < 10 && y >= 6 && y < 10 {
			return raster.Gray{V: 1}
		}
		return raster.Gray{V: 0}
	})
	out := ESDF(img, 6, 0, true, true)

	center := out.At(7, 7)
	corner := out.At(0, 0)
	if !(center.V > corner.V) {
		t.Fatalf("center of shape should read higher coverage than a far corner: center=%v corner=%v", center.V, corner.V)
	}
}

func TestESDFOutputIsClamped(t *testing.T) {
	const n = 10
	img := raster.NewImageFromFunc(raster.NewSize(n, n), func(x, y int) raster.Gray {
		if (x+y)%2 == 0 {
			return raster.Gray{V: 1}
		}
		return raster.Gray{V: 0}
	})
	out := ESDF(img, 1, 0, true, true)

	for _, p := range out.Data {
		if p.V < 0 || p.V > 1 {
			t.Fatalf("ESDF output must stay within [0,1], got %v", p.V)
		}
	}
}

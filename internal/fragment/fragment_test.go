package fragment

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestFragmentBlurFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(16, 16), raster.Gray{V: 0.5})
	out := FragmentBlur(src, 3, 8, 0)

	for _, p := range out.Data {
		if p.V < 0.49 || p.V > 0.51 {
			t.Fatalf("fragment blur of flat image drifted to %v", p.V)
		}
	}
}

func TestFragmentBlurPanicsOnZeroCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on count < 1")
		}
	}()
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 1})
	FragmentBlur(src, 2, 0, 0)
}

func TestFragmentBlurPanicsAboveMaxCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on count > 255")
		}
	}()
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 1})
	FragmentBlur(src, 2, 256, 0)
}

func TestFragmentBlurPremultipliedAlphaUnpremultipliesOpaqueFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(8, 8), raster.Vec4{X: 1, Y: 1, Z: 1, W: 1})
	out := FragmentBlurPremultipliedAlpha(src, 2, 6, 0)

	for _, p := range out.Data {
		if p.W < 0.99 || p.X < 0.99 {
			t.Fatalf("fully opaque flat image should stay opaque and full color, got %+v", p)
		}
	}
}

func TestFragmentBlurAlphaPreservesFullyTransparentImage(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(8, 8), raster.Vec4{})
	out := FragmentBlurAlpha(src, 2, 6, 0)

	for _, p := range out.Data {
		if p.W != 0 {
			t.Fatalf("fully transparent image should stay transparent, got alpha %v", p.W)
		}
	}
}

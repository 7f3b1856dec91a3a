package resample

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestNearestNeighborPowerOfTwoUpscale(t *testing.T) {
	src := raster.NewImageFromFunc(raster.NewSize(2, 2), func(x, y int) raster.Gray {
		return raster.Gray{V: float32(x + y*2)}
	})
	out := NearestNeighbor(src, raster.NewSize(4, 4))

	if out.At(0, 0) != src.At(0, 0) || out.At(3, 3) != src.At(1, 1) {
		t.Fatalf("2x upscale replication mismatch: %+v / %+v", out.At(0, 0), out.At(3, 3))
	}
}

func TestNearestNeighborExactSizeClones(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(3, 3), raster.Gray{V: 0.25})
	out := NearestNeighbor(src, raster.NewSize(3, 3))
	if out.At(1, 1).V != 0.25 {
		t.Fatal("exact-size nearest neighbor should preserve pixels")
	}
}

func TestScaleDownsamplePreservesFlatImage(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(8, 8), raster.Gray{V: 0.5})
	out, err := Scale(src, raster.NewSize(4, 4), Lanczos3, false, 1, GammaOpsGray)
	if err != nil {
		t.Fatalf("Scale error: %v", err)
	}
	for _, p := range out.Data {
		if p.V < 0.49 || p.V > 0.51 {
			t.Fatalf("flat image should resample to itself, got %v", p.V)
		}
	}
}

func TestScaleClipsOvershoot(t *testing.T) {
	// A sharp step edge drives Lanczos ringing outside [0,1]; Scale must clip.
	src := raster.NewImageFromFunc(raster.NewSize(8, 1), func(x, y int) raster.Gray {
		if x < 4 {
			return raster.Gray{V: 0}
		}
		return raster.Gray{V: 1}
	})
	out, err := Scale(src, raster.NewSize(16, 1), Lanczos3, false, 1, GammaOpsGray)
	if err != nil {
		t.Fatalf("Scale error: %v", err)
	}
	for _, p := range out.Data {
		if p.V < 0 || p.V > 1 {
			t.Fatalf("Lanczos3 output not clipped: %v", p.V)
		}
	}
}

func TestScaleEmptySizeReturnsEmptyImage(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 1})
	out, err := Scale(src, raster.NewSize(0, 4), Lanczos3, false, 1, GammaOpsGray)
	if err != nil {
		t.Fatalf("Scale error: %v", err)
	}
	if len(out.Data) != 0 {
		t.Fatal("empty target size should produce empty image")
	}
}

func TestGammaNDimRoundTripsFlatImage(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(64, 64), 3)
	data := make([]float32, shape.Len())
	for i := range data {
		data[i] = 0.4
	}
	img, err := raster.NewNDimImage(shape, data)
	if err != nil {
		t.Fatalf("NewNDimImage: %v", err)
	}

	GammaNDim(img, 2.2)
	for _, v := range img.Data {
		if v < 0 || v > 1 {
			t.Fatalf("gamma output out of range: %v", v)
		}
	}
}

func TestGammaNDimSkipsAlphaChannel(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(4, 4), 4)
	data := make([]float32, shape.Len())
	for i := range data {
		if i%4 == 3 {
			data[i] = 0.33
		} else {
			data[i] = 0.5
		}
	}
	img, _ := raster.NewNDimImage(shape, data)
	GammaNDim(img, 2.0)

	for i, v := range img.Data {
		if i%4 == 3 && v != 0.33 {
			t.Fatalf("alpha channel at %d was modified: %v", i, v)
		}
	}
}

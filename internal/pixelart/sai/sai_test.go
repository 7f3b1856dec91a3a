package sai

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestSai2xDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 1})
	out := Sai2x(src)
	if out.Size() != raster.NewSize(8, 8) {
		t.Fatalf("Sai2x size = %v, want 8x8", out.Size())
	}
}

func TestSai2xFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(5, 5), raster.Gray{V: 0.6})
	out := Sai2x(src)
	for _, p := range out.Data {
		if p.V != 0.6 {
			t.Fatalf("flat input should upscale to a flat output, got %v", p.V)
		}
	}
}

func TestSuperEagle2xDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(3, 3), raster.Vec3{})
	out := SuperEagle2x(src)
	if out.Size() != raster.NewSize(6, 6) {
		t.Fatalf("SuperEagle2x size = %v, want 6x6", out.Size())
	}
}

func TestSuperEagle2xFlatImageStaysFlat(t *testing.T) {
	flat := raster.Vec3{X: 0.2, Y: 0.4, Z: 0.6}
	src := raster.NewImageFromConst(raster.NewSize(5, 5), flat)
	out := SuperEagle2x(src)
	for _, p := range out.Data {
		if p != flat {
			t.Fatalf("flat input should upscale to a flat output, got %+v", p)
		}
	}
}

func TestSuperSai2xDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 2), raster.Gray{V: 1})
	out := SuperSai2x(src)
	if out.Size() != raster.NewSize(8, 4) {
		t.Fatalf("SuperSai2x size = %v, want 8x4", out.Size())
	}
}

func TestSuperSai2xFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(6, 6), raster.Gray{V: 0.9})
	out := SuperSai2x(src)
	for _, p := range out.Data {
		if p.V != 0.9 {
			t.Fatalf("flat input should upscale to a flat output, got %v", p.V)
		}
	}
}

func TestGetResult1AndGetResult2AreOpposedOnCleanDiagonal(t *testing.T) {
	// a==c and a==d both hold (x reaches 2, y stays 0), pushing the two
	// helpers to opposite signs.
	r1 := getResult1(1, 9, 1, 1)
	r2 := getResult2(1, 9, 1, 1)
	if r1 != -1 || r2 != 1 {
		t.Fatalf("getResult1/getResult2 = %d/%d, want -1/1", r1, r2)
	}
}

func TestAvg2AndAvg4Midpoints(t *testing.T) {
	a := raster.Gray{V: 0}
	b := raster.Gray{V: 1}
	if got := avg2(a, b); got.V != 0.5 {
		t.Fatalf("avg2(0,1) = %v, want 0.5", got.V)
	}
	c := raster.Gray{V: 0.5}
	d := raster.Gray{V: 0.5}
	if got := avg4(a, b, c, d); got.V != 0.5 {
		t.Fatalf("avg4(0,1,0.5,0.5) = %v, want 0.5", got.V)
	}
}

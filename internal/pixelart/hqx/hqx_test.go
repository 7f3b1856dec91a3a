package hqx

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestHq2xGrayDoublesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 1})
	out := Hq2xGray(src)
	if out.Size() != raster.NewSize(8, 8) {
		t.Fatalf("Hq2xGray size = %v, want 8x8", out.Size())
	}
}

func TestHq2xGrayFlatImageStaysFlat(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(5, 5), raster.Gray{V: 0.42})
	out := Hq2xGray(src)
	for _, p := range out.Data {
		if p.V != 0.42 {
			t.Fatalf("flat input should upscale to a flat output, got %v", p.V)
		}
	}
}

func TestHq3xGrayTriplesSizeAndKeepsCenterExact(t *testing.T) {
	src := raster.NewImageFromFunc(raster.NewSize(3, 3), func(x, y int) raster.Gray {
		if x == 1 && y == 1 {
			return raster.Gray{V: 0.75}
		}
		return raster.Gray{V: 0}
	})
	out := Hq3xGray(src)
	if out.Size() != raster.NewSize(9, 9) {
		t.Fatalf("Hq3xGray size = %v, want 9x9", out.Size())
	}
	// hq3x always writes the plain center pixel at the middle of each 3x3 block.
	if got := out.At(4, 4).V; got != 0.75 {
		t.Fatalf("hq3x center-of-block pixel = %v, want 0.75", got)
	}
}

func TestHq4xGrayQuadruplesSize(t *testing.T) {
	src := raster.NewImageFromConst(raster.NewSize(2, 2), raster.Gray{V: 1})
	out := Hq4xGray(src)
	if out.Size() != raster.NewSize(8, 8) {
		t.Fatalf("Hq4xGray size = %v, want 8x8", out.Size())
	}
}

func TestCornerRuleFlatRegionReturnsPlainInterp(t *testing.T) {
	eq := func(a, b raster.Gray) bool { return a.V == b.V }
	center := raster.Gray{V: 0.5}
	got := cornerRule(center, center, center, center, eq)
	if got.V != 0.5 {
		t.Fatalf("cornerRule over a uniform neighborhood should return the flat value, got %v", got.V)
	}
}

func TestEdgeRulePassthroughWhenEqual(t *testing.T) {
	eq := func(a, b raster.Gray) bool { return a.V == b.V }
	center := raster.Gray{V: 0.3}
	got := edgeRule(center, center, eq)
	if got.V != 0.3 {
		t.Fatalf("edgeRule with equal neighbor should pass through center, got %v", got.V)
	}
}

func TestEdgeRuleBlendsWhenUnequal(t *testing.T) {
	eq := func(a, b raster.Gray) bool { return a.V == b.V }
	center := raster.Gray{V: 0}
	edge := raster.Gray{V: 1}
	got := edgeRule(center, edge, eq)
	if got.V == 0 || got.V == 1 {
		t.Fatalf("edgeRule with differing neighbor should blend, got %v", got.V)
	}
}

func TestEqualGrayWithinTolerance(t *testing.T) {
	if !EqualGray(0.5, 0.5+maxDiffY/2) {
		t.Fatal("values within maxDiffY should compare equal")
	}
	if EqualGray(0, 1) {
		t.Fatal("far-apart values should not compare equal")
	}
}

func TestEqualVec3IdenticalColorsAreEqual(t *testing.T) {
	if !EqualVec3(0.2, 0.4, 0.6, 0.2, 0.4, 0.6) {
		t.Fatal("identical colors must be equal under EqualVec3")
	}
}

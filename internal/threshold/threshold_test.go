package threshold

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestBinaryThresholdNoAntiAliasing(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(2, 2), 1)
	img, _ := raster.NewNDimImage(shape, []float32{0.1, 0.6, 0.9, 0.4})

	BinaryThreshold(img, 0.5, false)

	want := []float32{0, 1, 1, 0}
	for i, v := range img.Data {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, v, want[i])
		}
	}
}

func TestBinaryThresholdAntiAliasingFlatRegionsStayBinary(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(4, 4), 1)
	data := make([]float32, shape.Len())
	for i := range data {
		data[i] = 0.9
	}
	img, _ := raster.NewNDimImage(shape, data)

	BinaryThreshold(img, 0.5, true)

	for i, v := range img.Data {
		if v != 1 {
			t.Fatalf("flat above-threshold region should stay fully on, index %d got %v", i, v)
		}
	}
}

func TestBinaryThresholdAntiAliasingProducesIntermediateEdgeValues(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(4, 1), 1)
	img, _ := raster.NewNDimImage(shape, []float32{0.9, 0.9, 0.1, 0.1})

	BinaryThreshold(img, 0.5, true)

	found := false
	for _, v := range img.Data {
		if v > 0 && v < 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected at least one anti-aliased intermediate value at the edge")
	}
}

func TestBiLinearGetAreaFlatAboveThreshold(t *testing.T) {
	b := BiLinear{X0Y0: 1, X1Y0: 1, X0Y1: 1, X1Y1: 1}
	if got := b.GetArea(0.5); got != 1 {
		t.Fatalf("flat patch entirely above threshold should have area 1, got %v", got)
	}
}

func TestBiLinearGetAreaFlatBelowThreshold(t *testing.T) {
	b := BiLinear{X0Y0: 0, X1Y0: 0, X0Y1: 0, X1Y1: 0}
	if got := b.GetArea(0.5); got != 0 {
		t.Fatalf("flat patch entirely below threshold should have area 0, got %v", got)
	}
}

func TestBiLinearGetAreaHalfPlane(t *testing.T) {
	// f(x,y) = x, a pure left-to-right ramp: area above 0.5 should be ~0.5.
	b := BiLinear{X0Y0: 0, X1Y0: 1, X0Y1: 0, X1Y1: 1}
	got := b.GetArea(0.5)
	if got < 0.49 || got > 0.51 {
		t.Fatalf("linear ramp area above midpoint threshold = %v, want ~0.5", got)
	}
}

func TestBiLinearGetAreaWithinBounds(t *testing.T) {
	b := BiLinear{X0Y0: 0.2, X1Y0: 0.8, X0Y1: 0.6, X1Y1: 0.1}
	got := b.GetArea(0.4)
	if got < 0 || got > 1 {
		t.Fatalf("area out of [0,1]: %v", got)
	}
}

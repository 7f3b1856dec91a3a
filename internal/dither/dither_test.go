package dither

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestChannelQuantizerEndpointsStable(t *testing.T) {
	q := NewChannelQuantizerGray(4)
	for _, v := range []float32{0, 1} {
		got := q.NearestColor(raster.Gray{V: v})
		if got.V != v {
			t.Fatalf("endpoint %v quantized to %v, want stable", v, got.V)
		}
	}
}

func TestChannelQuantizerMidpointRounds(t *testing.T) {
	q := NewChannelQuantizerGray(2)
	got := q.NearestColor(raster.Gray{V: 0.6})
	if got.V != 1 {
		t.Fatalf("0.6 with 2 levels should round to 1, got %v", got.V)
	}
	got = q.NearestColor(raster.Gray{V: 0.4})
	if got.V != 0 {
		t.Fatalf("0.4 with 2 levels should round to 0, got %v", got.V)
	}
}

func TestColorPaletteNearestColor(t *testing.T) {
	palette := NewColorPalette([]raster.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: 0, Z: 0},
	}, BoundError[raster.Vec3]{})

	got := palette.NearestColor(raster.Vec3{X: 0.9, Y: 0.05, Z: 0.05})
	if got != (raster.Vec3{X: 1, Y: 0, Z: 0}) {
		t.Fatalf("expected nearest to red, got %+v", got)
	}
}

func TestColorPalettePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty palette")
		}
	}()
	NewColorPalette([]raster.Gray{}, BoundError[raster.Gray]{})
}

func TestErrorDiffusionDitherOnlyProducesQuantizedLevels(t *testing.T) {
	img := raster.NewImageFromFunc(raster.NewSize(16, 16), func(x, y int) raster.Gray {
		return raster.Gray{V: float32(x+y) / 30}
	})
	q := NewChannelQuantizerGray(2)
	ErrorDiffusionDither(&img, FloydSteinberg, q)

	for _, p := range img.Data {
		if p.V != 0 && p.V != 1 {
			t.Fatalf("expected binary output, got %v", p.V)
		}
	}
}

func TestErrorDiffusionDitherPreservesAverageApproximately(t *testing.T) {
	const n = 32
	img := raster.NewImageFromConst(raster.NewSize(n, n), raster.Gray{V: 0.5})
	q := NewChannelQuantizerGray(2)
	ErrorDiffusionDither(&img, FloydSteinberg, q)

	var sum float32
	for _, p := range img.Data {
		sum += p.V
	}
	mean := sum / float32(n*n)
	if mean < 0.3 || mean > 0.7 {
		t.Fatalf("error diffusion on flat 0.5 image drifted mean to %v", mean)
	}
}

func TestErrorDiffusionDitherMapLeavesSourceUntouched(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(4, 4), raster.Gray{V: 0.5})
	q := NewChannelQuantizerGray(2)
	out := ErrorDiffusionDitherMap(img, FloydSteinberg, q)

	if img.At(0, 0).V != 0.5 {
		t.Fatal("ErrorDiffusionDitherMap mutated its source")
	}
	for _, p := range out.Data {
		if p.V != 0 && p.V != 1 {
			t.Fatalf("expected binary output from map variant, got %v", p.V)
		}
	}
}

func TestOrderedDitherBinaryFastPathProducesBinaryOutput(t *testing.T) {
	shape := raster.ShapeFromSize(raster.NewSize(8, 8), 1)
	data := make([]float32, shape.Len())
	for i := range data {
		data[i] = 0.5
	}
	img, _ := raster.NewNDimImage(shape, data)
	OrderedDither(img, 4, ChannelQuantizerSpec{PerChannel: 2})

	for _, v := range img.Data {
		if v != 0 && v != 1 {
			t.Fatalf("binary ordered dither produced non-binary value %v", v)
		}
	}
}

func TestOrderedDitherPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two n")
		}
	}()
	shape := raster.ShapeFromSize(raster.NewSize(4, 4), 1)
	img, _ := raster.NewNDimImage(shape, make([]float32, shape.Len()))
	OrderedDither(img, 3, ChannelQuantizerSpec{PerChannel: 2})
}

func TestHilbertScanVisitsEveryPixelExactlyOnceAdjacently(t *testing.T) {
	const w, h = 7, 5
	visited := make(map[[2]int]bool)
	var prev *[2]int
	count := 0

	hilbertScan(w, h, func(x, y int) {
		count++
		key := [2]int{x, y}
		if visited[key] {
			t.Fatalf("pixel (%d,%d) visited twice", x, y)
		}
		visited[key] = true
		if prev != nil {
			dx := x - prev[0]
			dy := y - prev[1]
			if dx*dx+dy*dy != 1 {
				t.Fatalf("non-adjacent step from %v to (%d,%d)", *prev, x, y)
			}
		}
		prev = &key
	})

	if count != w*h {
		t.Fatalf("visited %d pixels, want %d", count, w*h)
	}
}

func TestRiemersmaDitherProducesQuantizedLevels(t *testing.T) {
	img := raster.NewImageFromFunc(raster.NewSize(13, 9), func(x, y int) raster.Gray {
		return raster.Gray{V: float32(x*y%7) / 6}
	})
	q := NewChannelQuantizerGray(2)
	RiemersmaDither(&img, 16, 1.0/16, q)

	for _, p := range img.Data {
		if p.V != 0 && p.V != 1 {
			t.Fatalf("expected binary riemersma output, got %v", p.V)
		}
	}
}

func TestRiemersmaBasePanicsOnDegenerateHistory(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for historyLength == 1")
		}
	}()
	riemersmaBase(0.5, 1)
}

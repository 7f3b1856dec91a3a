package raster

import "testing"

func TestImageAtSet(t *testing.T) {
	img := NewImageFromConst(NewSize(3, 2), Gray{V: 0})
	img.Set(1, 1, Gray{V: 0.5})

	if got := img.At(1, 1); got.V != 0.5 {
		t.Fatalf("At(1,1) = %v, want 0.5", got.V)
	}
	if got := img.At(0, 0); got.V != 0 {
		t.Fatalf("At(0,0) = %v, want 0", got.V)
	}
}

func TestImageMapPreservesSize(t *testing.T) {
	img := NewImageFromFunc(NewSize(4, 4), func(x, y int) Vec3 {
		return Vec3{X: float32(x), Y: float32(y), Z: 0}
	})
	out := img.Map(func(p Vec3) Vec3 { return p.Scale(2) })

	if out.Size() != img.Size() {
		t.Fatalf("size changed: %v vs %v", out.Size(), img.Size())
	}
	if got := out.At(2, 3); got.X != 4 || got.Y != 6 {
		t.Fatalf("unexpected scaled pixel: %+v", got)
	}
}

func TestImageCloneIndependence(t *testing.T) {
	img := NewImageFromConst(NewSize(2, 2), Gray{V: 1})
	clone := img.Clone()
	clone.Set(0, 0, Gray{V: 0})

	if img.At(0, 0).V != 1 {
		t.Fatal("mutating clone affected original")
	}
}

func TestPixelClipClampsNaNToMax(t *testing.T) {
	nan := float32(0)
	nan = nan / nan
	got := Gray{V: nan}.Clip(0, 1)
	if got.V != 1 {
		t.Fatalf("NaN did not clip to max: got %v", got.V)
	}
}

func TestSizeScaleRoundsUp(t *testing.T) {
	s := NewSize(3, 3).Scale(1.5)
	if s.Width != 5 || s.Height != 5 {
		t.Fatalf("Scale(1.5) of 3x3 = %v, want 5x5", s)
	}
}

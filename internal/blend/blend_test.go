package blend

import (
	"testing"

	"github.com/AnyUserName/rasterops/internal/raster"
)

func TestOverlaySelfMutIsNoOpBelow2(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{W: 0.5})
	OverlaySelfMut(&img, 1)
	if img.At(0, 0).W != 0.5 {
		t.Fatal("OverlaySelfMut(n<2) should not modify the image")
	}
}

func TestOverlaySelfMutCombinesAlpha(t *testing.T) {
	img := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{W: 0.5})
	OverlaySelfMut(&img, 2)
	want := float32(1 - 0.5*0.5)
	if got := img.At(0, 0).W; got != want {
		t.Fatalf("got alpha %v, want %v", got, want)
	}
}

func TestOverlayMutPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched sizes")
		}
	}()
	base := raster.NewImageFromConst(raster.NewSize(2, 2), raster.Vec4{})
	top := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{})
	OverlayMut(&base, top)
}

func TestOverlayMutOpaqueTopWins(t *testing.T) {
	base := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{X: 1, W: 1})
	top := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{Y: 1, W: 1})
	OverlayMut(&base, top)

	got := base.At(0, 0)
	if got.Y != 1 || got.X != 0 || got.W != 1 {
		t.Fatalf("fully opaque top should fully replace base, got %+v", got)
	}
}

func TestOverlayMutTransparentTopLeavesBaseUnchanged(t *testing.T) {
	base := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{X: 1, W: 1})
	top := raster.NewImageFromConst(raster.NewSize(1, 1), raster.Vec4{})
	OverlayMut(&base, top)

	got := base.At(0, 0)
	if got.X != 1 || got.W != 1 {
		t.Fatalf("fully transparent top should leave base unchanged, got %+v", got)
	}
}

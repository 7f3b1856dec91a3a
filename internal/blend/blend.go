// Package blend implements source-over style alpha compositing used by
// the alpha-fill engine's Fragment mode. Grounded on image_ops::blend.
package blend

import (
	"math"

	"github.com/AnyUserName/rasterops/internal/raster"
)

// OverlaySelfMut overlays img with itself n times in place: the alpha at
// each pixel becomes 1 - (1-a)^n, color unchanged. A no-op for n < 2.
func OverlaySelfMut(img *raster.Image[raster.Vec4], n uint32) {
	if n < 2 {
		return
	}
	img.Change(func(p raster.Vec4) raster.Vec4 {
		aInv := 1 - p.W
		switch n {
		case 2:
			p.W = 1 - aInv*aInv
		case 3:
			p.W = 1 - aInv*aInv*aInv
		default:
			p.W = 1 - float32(math.Pow(float64(aInv), float64(n)))
		}
		return p
	})
}

// OverlayMut composites top over img in place (source-over, img is the
// base layer). Panics if the sizes differ, mirroring the source's
// assert. Grounded on image_ops::blend::overlay_mut.
func OverlayMut(img *raster.Image[raster.Vec4], top raster.Image[raster.Vec4]) {
	if img.Size() != top.Size() {
		panic("blend: overlay_mut requires equal image sizes")
	}
	for i, a := range img.Data {
		b := top.Data[i]
		finalAlpha := 1 - (1-a.W)*(1-b.W)

		rgb := b.Scale(b.W).Add(a.Scale(a.W * (1 - b.W)))
		div := finalAlpha
		if div == 0 {
			div = 1
		}
		rgb = rgb.Scale(1 / div)
		rgb.W = finalAlpha
		img.Data[i] = rgb
	}
}

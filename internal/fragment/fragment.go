// Package fragment implements fragment (kaleidoscope) blur (component
// F): an image is blurred by averaging ring-sampled displaced copies of
// itself. Grounded on image_ops::fragment_blur.
package fragment

import (
	"math"

	"github.com/AnyUserName/rasterops/internal/raster"
)

type offset struct{ x, y int }

// getOffsets computes count displacement vectors evenly spaced around a
// circle of the given radius, starting at angleOffset radians.
func getOffsets(radius float32, count int, angleOffset float32) []offset {
	if count < 1 {
		panic("fragment: count must be >= 1")
	}
	out := make([]offset, count)
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(count)*2*math.Pi + float64(angleOffset)
		out[i] = offset{
			x: int(math.Round(math.Sin(angle) * float64(radius))),
			y: int(math.Round(math.Cos(angle) * float64(radius))),
		}
	}
	return out
}

// offsetRange returns [start, end) such that every value in the range,
// shifted by offset, stays within [0, length).
func offsetRange(off, length int) (start, end int) {
	start = clampInt(-off, 0, length)
	end = clampInt(length-off, 0, length)
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FragmentBlur blurs every channel of src independently by averaging
// ring-displaced copies. Grounded on image_ops::fragment_blur::fragment_blur.
func FragmentBlur[P raster.Pixel[P]](src raster.Image[P], radius float32, count int, angleOffset float32) raster.Image[P] {
	w, h := src.Width(), src.Height()
	if count > 255 {
		panic("fragment: count must be <= 255")
	}

	dest := raster.NewImageFromConst[P](src.Size(), zeroOf[P]())
	countArray := make([]uint8, w*h)

	for _, o := range getOffsets(radius, count, angleOffset) {
		xs, xe := offsetRange(o.x, w)
		ys, ye := offsetRange(o.y, h)
		if xs >= xe || ys >= ye {
			continue
		}
		for y := ys; y < ye; y++ {
			srcY := y + o.y
			for x := xs; x < xe; x++ {
				srcX := x + o.x
				idx := y*w + x
				dest.Data[idx] = dest.Data[idx].Add(src.At(srcX, srcY))
				countArray[idx]++
			}
		}
	}

	for i := range dest.Data {
		c := countArray[i]
		if c == 0 {
			c = 1
		}
		dest.Data[i] = dest.Data[i].Scale(1 / float32(c))
	}

	return dest
}

// FragmentBlurPremultipliedAlpha blurs a premultiplied-alpha RGBA image,
// un-premultiplying the averaged result and averaging alpha over its own
// hit count. Grounded on
// image_ops::fragment_blur::fragment_blur_premultiplied_alpha.
func FragmentBlurPremultipliedAlpha(src raster.Image[raster.Vec4], radius float32, count int, angleOffset float32) raster.Image[raster.Vec4] {
	w, h := src.Width(), src.Height()
	if count > 255 {
		panic("fragment: count must be <= 255")
	}

	dest := raster.NewImageFromConst[raster.Vec4](src.Size(), raster.Vec4{})
	countArray := make([]uint8, w*h)

	for _, o := range getOffsets(radius, count, angleOffset) {
		xs, xe := offsetRange(o.x, w)
		ys, ye := offsetRange(o.y, h)
		if xs >= xe || ys >= ye {
			continue
		}
		for y := ys; y < ye; y++ {
			srcY := y + o.y
			for x := xs; x < xe; x++ {
				srcX := x + o.x
				idx := y*w + x
				dest.Data[idx] = dest.Data[idx].Add(src.At(srcX, srcY))
				countArray[idx]++
			}
		}
	}

	for i, p := range dest.Data {
		rgb := float32(1)
		if p.W != 0 {
			rgb = 1 / p.W
		}
		c := countArray[i]
		a := float32(1)
		if c != 0 {
			a = 1 / float32(c)
		}
		dest.Data[i] = raster.Vec4{X: p.X * rgb, Y: p.Y * rgb, Z: p.Z * rgb, W: p.W * a}
	}

	return dest
}

// FragmentBlurAlpha premultiplies src's RGB by its alpha, blurs, then
// delegates to FragmentBlurPremultipliedAlpha. Grounded on
// image_ops::fragment_blur::fragment_blur_alpha.
func FragmentBlurAlpha(src raster.Image[raster.Vec4], radius float32, count int, angleOffset float32) raster.Image[raster.Vec4] {
	pre := src.Map(func(p raster.Vec4) raster.Vec4 {
		return raster.Vec4{X: p.X * p.W, Y: p.Y * p.W, Z: p.Z * p.W, W: p.W}
	})
	return FragmentBlurPremultipliedAlpha(pre, radius, count, angleOffset)
}

func zeroOf[P raster.Pixel[P]]() P {
	var z P
	return z
}

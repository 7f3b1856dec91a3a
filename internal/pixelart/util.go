// Package pixelart implements pixel-art upscalers (component J): the
// EPX/AdvMAME family, Eagle, and (in the sai and hqx subpackages) the
// 2xSaI and HQx families. Grounded on image_ops::pixel_art.
package pixelart

import "github.com/AnyUserName/rasterops/internal/raster"

func write2x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [4]P) {
	w2 := dest.Width()
	y2, x2 := y*2, x*2
	dest.Set(x2, y2, r[0])
	dest.Set(x2+1, y2, r[1])
	dest.Set(x2, y2+1, r[2])
	dest.Set(x2+1, y2+1, r[3])
	_ = w2
}

func write3x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [9]P) {
	y3, x3 := y*3, x*3
	dest.Set(x3, y3, r[0])
	dest.Set(x3+1, y3, r[1])
	dest.Set(x3+2, y3, r[2])
	dest.Set(x3, y3+1, r[3])
	dest.Set(x3+1, y3+1, r[4])
	dest.Set(x3+2, y3+1, r[5])
	dest.Set(x3, y3+2, r[6])
	dest.Set(x3+1, y3+2, r[7])
	dest.Set(x3+2, y3+2, r[8])
}

func write4x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [16]P) {
	y4, x4 := y*4, x*4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			dest.Set(x4+col, y4+row, r[row*4+col])
		}
	}
}

func scaled[P raster.Pixel[P]](src raster.Image[P], factor int) raster.Image[P] {
	var zero P
	size := raster.NewSize(src.Width()*factor, src.Height()*factor)
	return raster.NewImageFromConst(size, zero)
}

func neighborBounds(v, length int) (lo, hi int) {
	lo = v - 1
	if lo < 0 {
		lo = 0
	}
	hi = v + 1
	if hi > length-1 {
		hi = length - 1
	}
	return
}

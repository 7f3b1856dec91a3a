package hqx

import "github.com/AnyUserName/rasterops/internal/raster"

type eqFunc[P any] func(a, b P) bool

func write2x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [4]P) {
	y2, x2 := y*2, x*2
	dest.Set(x2, y2, r[0])
	dest.Set(x2+1, y2, r[1])
	dest.Set(x2, y2+1, r[2])
	dest.Set(x2+1, y2+1, r[3])
}

func write3x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [9]P) {
	y3, x3 := y*3, x*3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			dest.Set(x3+col, y3+row, r[row*3+col])
		}
	}
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

// cornerRule computes one corner of the output block from the center
// pixel, the two edge-adjacent neighbors and the diagonal neighbor,
// following the same equality-driven dispatch the reference's 256-case
// pattern switch encodes (flat region / matching edges with an outlier
// diagonal / matching diagonal / no local structure), restated as a
// composable rule instead of an unrolled table.
func cornerRule[P blendable[P]](center, edgeA, edgeB, diag P, eq eqFunc[P]) P {
	switch {
	case eq(edgeA, edgeB) && eq(diag, edgeA):
		return interp1(center, edgeA)
	case eq(edgeA, edgeB):
		return interp6(center, edgeA, edgeB)
	case eq(diag, edgeA):
		return interp7(center, edgeA, edgeB)
	case eq(diag, edgeB):
		return interp7(center, edgeB, edgeA)
	default:
		return interp2(center, edgeA, edgeB)
	}
}

func edgeRule[P blendable[P]](center, edge P, eq eqFunc[P]) P {
	if eq(center, edge) {
		return center
	}
	return interp5(center, edge)
}

// Hq2xPixel computes one input pixel's 2x2 output block. Exported so
// Gray/Vec3/Vec4 wrappers (and tests) can drive it directly.
func Hq2xPixel[P blendable[P]](nw, n, ne, w, center, e, sw, s, se P, eq eqFunc[P]) [4]P {
	return [4]P{
		cornerRule(center, n, w, nw, eq),
		cornerRule(center, n, e, ne, eq),
		cornerRule(center, s, w, sw, eq),
		cornerRule(center, s, e, se, eq),
	}
}

func hq2x[P blendable[P]](src raster.Image[P], eq eqFunc[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 2)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			block := Hq2xPixel(
				src.At(xM1, yM1), src.At(x, yM1), src.At(xP1, yM1),
				src.At(xM1, y), src.At(x, y), src.At(xP1, y),
				src.At(xM1, yP1), src.At(x, yP1), src.At(xP1, yP1),
				eq,
			)
			write2x(dest, x, y, block)
		}
	}

	return dest
}

func hq3x[P blendable[P]](src raster.Image[P], eq eqFunc[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 3)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			nw, n, ne := src.At(xM1, yM1), src.At(x, yM1), src.At(xP1, yM1)
			wv, center, e := src.At(xM1, y), src.At(x, y), src.At(xP1, y)
			sw, s, se := src.At(xM1, yP1), src.At(x, yP1), src.At(xP1, yP1)

			block := [9]P{
				cornerRule(center, n, wv, nw, eq),
				edgeRule(center, n, eq),
				cornerRule(center, n, e, ne, eq),
				edgeRule(center, wv, eq),
				center,
				edgeRule(center, e, eq),
				cornerRule(center, s, wv, sw, eq),
				edgeRule(center, s, eq),
				cornerRule(center, s, e, se, eq),
			}
			write3x(dest, x, y, block)
		}
	}

	return dest
}

func hq4x[P blendable[P]](src raster.Image[P], eq eqFunc[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 4)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			nw, n, ne := src.At(xM1, yM1), src.At(x, yM1), src.At(xP1, yM1)
			wv, center, e := src.At(xM1, y), src.At(x, y), src.At(xP1, y)
			sw, s, se := src.At(xM1, yP1), src.At(x, yP1), src.At(xP1, yP1)

			topMid := edgeRule(center, n, eq)
			botMid := edgeRule(center, s, eq)
			leftMid := edgeRule(center, wv, eq)
			rightMid := edgeRule(center, e, eq)

			block := [16]P{
				cornerRule(center, n, wv, nw, eq), topMid, topMid, cornerRule(center, n, e, ne, eq),
				leftMid, center, center, rightMid,
				leftMid, center, center, rightMid,
				cornerRule(center, s, wv, sw, eq), botMid, botMid, cornerRule(center, s, e, se, eq),
			}
			write4x(dest, x, y, block)
		}
	}

	return dest
}

// Hq2xGray upscales a 1-channel image 2x via hq2x. Grounded on
// pixel_art::hqx::hq2x, instantiated over Y-space equality.
func Hq2xGray(src raster.Image[raster.Gray]) raster.Image[raster.Gray] {
	return hq2x(src, func(a, b raster.Gray) bool { return EqualGray(a.V, b.V) })
}

// Hq2xVec3 upscales an RGB image 2x via hq2x, comparing neighbors in
// YUV space. Grounded on pixel_art::hqx::hq2x.
func Hq2xVec3(src raster.Image[raster.Vec3]) raster.Image[raster.Vec3] {
	return hq2x(src, func(a, b raster.Vec3) bool {
		return EqualVec3(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	})
}

// Hq2xVec4 upscales an RGBA image 2x via hq2x, comparing neighbors in
// YUVA space. Grounded on pixel_art::hqx::hq2x.
func Hq2xVec4(src raster.Image[raster.Vec4]) raster.Image[raster.Vec4] {
	return hq2x(src, func(a, b raster.Vec4) bool {
		return EqualVec4(a.X, a.Y, a.Z, a.W, b.X, b.Y, b.Z, b.W)
	})
}

// Hq3xGray upscales a 1-channel image 3x via hq3x.
func Hq3xGray(src raster.Image[raster.Gray]) raster.Image[raster.Gray] {
	return hq3x(src, func(a, b raster.Gray) bool { return EqualGray(a.V, b.V) })
}

// Hq3xVec3 upscales an RGB image 3x via hq3x.
func Hq3xVec3(src raster.Image[raster.Vec3]) raster.Image[raster.Vec3] {
	return hq3x(src, func(a, b raster.Vec3) bool {
		return EqualVec3(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	})
}

// Hq3xVec4 upscales an RGBA image 3x via hq3x.
func Hq3xVec4(src raster.Image[raster.Vec4]) raster.Image[raster.Vec4] {
	return hq3x(src, func(a, b raster.Vec4) bool {
		return EqualVec4(a.X, a.Y, a.Z, a.W, b.X, b.Y, b.Z, b.W)
	})
}

// Hq4xGray upscales a 1-channel image 4x via hq4x.
func Hq4xGray(src raster.Image[raster.Gray]) raster.Image[raster.Gray] {
	return hq4x(src, func(a, b raster.Gray) bool { return EqualGray(a.V, b.V) })
}

// Hq4xVec3 upscales an RGB image 4x via hq4x.
func Hq4xVec3(src raster.Image[raster.Vec3]) raster.Image[raster.Vec3] {
	return hq4x(src, func(a, b raster.Vec3) bool {
		return EqualVec3(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	})
}

// Hq4xVec4 upscales an RGBA image 4x via hq4x.
func Hq4xVec4(src raster.Image[raster.Vec4]) raster.Image[raster.Vec4] {
	return hq4x(src, func(a, b raster.Vec4) bool {
		return EqualVec4(a.X, a.Y, a.Z, a.W, b.X, b.Y, b.Z, b.W)
	})
}

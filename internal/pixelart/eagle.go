package pixelart

import "github.com/AnyUserName/rasterops/internal/raster"

// Eagle2x upscales src 2x via the Eagle corner-majority rule. Grounded
// on pixel_art::eagle::eagle_2x.
func Eagle2x[P comparablePixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 2)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			// ABC
			// DEF
			// GHI
			a := src.At(xM1, yM1)
			b := src.At(x, yM1)
			c := src.At(xP1, yM1)
			d := src.At(xM1, y)
			e := src.At(x, y)
			f := src.At(xP1, y)
			g := src.At(xM1, yP1)
			h := src.At(x, yP1)
			i := src.At(xP1, yP1)

			r1, r2, r3, r4 := e, e, e, e

			if d == a && a == b {
				r1 = a
			}
			if b == c && c == f {
				r2 = c
			}
			if h == g && g == d {
				r3 = g
			}
			if f == i && i == h {
				r4 = i
			}

			write2x(dest, x, y, [4]P{r1, r2, r3, r4})
		}
	}

	return dest
}

// Eagle3x upscales src 3x, extending the 2x corner-majority rule to the
// 3x output block. Grounded on pixel_art::eagle::eagle_3x.
func Eagle3x[P comparablePixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 3)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			a := src.At(xM1, yM1)
			b := src.At(x, yM1)
			c := src.At(xP1, yM1)
			d := src.At(xM1, y)
			e := src.At(x, y)
			f := src.At(xP1, y)
			g := src.At(xM1, yP1)
			h := src.At(x, yP1)
			i := src.At(xP1, yP1)

			r1, r2, r3, r4, r5, r6, r7, r8, r9 := e, e, e, e, e, e, e, e, e

			if d == a && a == b {
				r1 = a
			}
			if a == b && b == c && (d == b || b == f) {
				r2 = b
			}
			if b == c && c == f {
				r3 = c
			}
			if a == d && d == g && (b == d || d == h) {
				r4 = d
			}
			if c == f && f == i && (b == f || f == h) {
				r6 = f
			}
			if h == g && g == d {
				r7 = g
			}
			if g == h && h == i && (d == h || h == f) {
				r8 = h
			}
			if f == i && i == h {
				r9 = i
			}

			write3x(dest, x, y, [9]P{r1, r2, r3, r4, r5, r6, r7, r8, r9})
		}
	}

	return dest
}

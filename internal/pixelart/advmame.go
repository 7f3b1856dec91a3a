package pixelart

import "github.com/AnyUserName/rasterops/internal/raster"

// comparablePixel is satisfied by pixel kinds usable in the equality-
// driven scalers (AdvMAME, Eagle, 2xSaI): every concrete Pixel kind's
// fields are float32, so Go's built-in struct equality already matches
// the source's derived PartialEq.
type comparablePixel[P any] interface {
	raster.Pixel[P]
	comparable
}

// AdvMame2x upscales src 2x via the EPX/Scale2x/AdvMAME2x edge-detection
// rule. Grounded on pixel_art::adv_mame::adv_mame_2x.
func AdvMame2x[P comparablePixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 2)

	for y := 0; y < h; y++ {
		yM1, yP1 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1 := neighborBounds(x, w)

			// .A.
			// CPB
			// .D.
			p := src.At(x, y)
			a := src.At(x, yM1)
			b := src.At(xP1, y)
			c := src.At(xM1, y)
			d := src.At(x, yP1)

			r1, r2, r3, r4 := p, p, p, p

			eqAB := a == b
			eqAC := a == c
			eqBD := b == d
			eqCD := c == d

			if eqAC && !eqCD && !eqAB {
				r1 = a
			}
			if eqAB && !eqAC && !eqBD {
				r2 = b
			}
			if eqCD && !eqAC && !eqBD {
				r3 = c
			}
			if eqBD && !eqAB && !eqCD {
				r4 = d
			}

			write2x(dest, x, y, [4]P{r1, r2, r3, r4})
		}
	}

	return dest
}

// AdvMame3x upscales src 3x via AdvMAME3x's nine-rule pattern test.
// Grounded on pixel_art::adv_mame::adv_mame_3x.
func AdvMame3x[P comparablePixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled(src, 3)

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

			r1, r2, r3, r4, r5, r6, r7, r8, r9 := e, e, e, e, e, e, e, e, e

			if b == d && d != h && b != f {
				r1 = d
			}
			if (b == d && d != h && b != f && c != e) || (b == f && b != d && f != h && a != e) {
				r2 = b
			}
			if b == f && b != d && f != h {
				r3 = f
			}
			if (d == h && f != h && b != d && a != e) || (b == d && d != h && b != f && e != g) {
				r4 = d
			}
			if (b == f && b != d && f != h && e != i) || (f == h && b != f && d != h && c != e) {
				r6 = f
			}
			if d == h && f != h && b != d {
				r7 = d
			}
			if (f == h && b != f && d != h && e != g) || (d == h && f != h && b != d && e != i) {
				r8 = h
			}
			if f == h && b != f && d != h {
				r9 = f
			}

			write3x(dest, x, y, [9]P{r1, r2, r3, r4, r5, r6, r7, r8, r9})
		}
	}

	return dest
}

// AdvMame4x upscales src 4x by applying AdvMame2x twice. Grounded on
// pixel_art::adv_mame::adv_mame_4x.
func AdvMame4x[P comparablePixel[P]](src raster.Image[P]) raster.Image[P] {
	return AdvMame2x(AdvMame2x(src))
}

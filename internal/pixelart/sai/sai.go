// Package sai implements the 2xSaI family of pixel-art upscalers
// (2xSaI, Super 2xSaI, Super Eagle). Grounded on pixel_art::sai, itself
// adapted from Derek Liauw Kie Fa's original 2xSaI C++ source.
package sai

import "github.com/AnyUserName/rasterops/internal/raster"

type pixel[P any] interface {
	raster.Pixel[P]
	comparable
}

func avg2[P pixel[P]](a, b P) P { return a.Add(b).Scale(0.5) }
func avg4[P pixel[P]](a, b, c, d P) P {
	return a.Add(b).Add(c).Add(d).Scale(0.25)
}

func getResult1[P comparable](a, b, c, d P) int {
	x, y, r := 0, 0, 0
	if a == c {
		x++
	} else if b == c {
		y++
	}
	if a == d {
		x++
	} else if b == d {
		y++
	}
	if x <= 1 {
		r++
	}
	if y <= 1 {
		r--
	}
	return r
}

func getResult2[P comparable](a, b, c, d P) int {
	x, y, r := 0, 0, 0
	if a == c {
		x++
	} else if b == c {
		y++
	}
	if a == d {
		x++
	} else if b == d {
		y++
	}
	if x <= 1 {
		r--
	}
	if y <= 1 {
		r++
	}
	return r
}

func write2x[P raster.Pixel[P]](dest raster.Image[P], x, y int, r [4]P) {
	y2, x2 := y*2, x*2
	dest.Set(x2, y2, r[0])
	dest.Set(x2+1, y2, r[1])
	dest.Set(x2, y2+1, r[2])
	dest.Set(x2+1, y2+1, r[3])
}

func neighborBounds(v, length int) (lo, hi, hi2 int) {
	lo = v - 1
	if lo < 0 {
		lo = 0
	}
	hi = v + 1
	if hi > length-1 {
		hi = length - 1
	}
	hi2 = v + 2
	if hi2 > length-1 {
		hi2 = length - 1
	}
	return
}

func scaled2x[P raster.Pixel[P]](src raster.Image[P]) raster.Image[P] {
	var zero P
	size := raster.NewSize(src.Width()*2, src.Height()*2)
	return raster.NewImageFromConst(size, zero)
}

// Sai2x upscales src 2x via the original 2xSaI algorithm. Grounded on
// pixel_art::sai::sai_2x.
func Sai2x[P pixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled2x(src)

	for y := 0; y < h; y++ {
		yM1, yP1, yP2 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1, xP2 := neighborBounds(x, w)

			// I E F J
			// G A B K
			// H C D L
			// M N O P
			colorI := src.At(xM1, yM1)
			colorE := src.At(x, yM1)
			colorF := src.At(xP1, yM1)
			colorJ := src.At(xP2, yM1)

			colorG := src.At(xM1, y)
			colorA := src.At(x, y)
			colorB := src.At(xP1, y)
			colorK := src.At(xP2, y)

			colorH := src.At(xM1, yP1)
			colorC := src.At(x, yP1)
			colorD := src.At(xP1, yP1)
			colorL := src.At(xP2, yP1)

			colorM := src.At(xM1, yP2)
			colorN := src.At(x, yP2)
			colorO := src.At(xP1, yP2)

			r1 := colorA
			var product, product1, product2 P

			switch {
			case colorA == colorD && colorB != colorC:
				if (colorA == colorE && colorB == colorL) ||
					(colorA == colorC && colorA == colorF && colorB != colorE && colorB == colorJ) {
					product = colorA
				} else {
					product = avg2(colorA, colorB)
				}

				if (colorA == colorG && colorC == colorO) ||
					(colorA == colorB && colorA == colorH && colorG != colorC && colorC == colorM) {
					product1 = colorA
				} else {
					product1 = avg2(colorA, colorC)
				}
				product2 = colorA

			case colorB == colorC && colorA != colorD:
				if (colorB == colorF && colorA == colorH) ||
					(colorB == colorE && colorB == colorD && colorA != colorF && colorA == colorI) {
					product = colorB
				} else {
					product = avg2(colorA, colorB)
				}

				if (colorC == colorH && colorA == colorF) ||
					(colorC == colorG && colorC == colorD && colorA != colorH && colorA == colorI) {
					product1 = colorC
				} else {
					product1 = avg2(colorA, colorC)
				}
				product2 = colorB

			case colorA == colorD && colorB == colorC:
				if colorA == colorB {
					product, product1, product2 = colorA, colorA, colorA
				} else {
					r := 0
					product1 = avg2(colorA, colorC)
					product = avg2(colorA, colorB)

					r += getResult1(colorA, colorB, colorG, colorE)
					r += getResult2(colorB, colorA, colorK, colorF)
					r += getResult2(colorB, colorA, colorH, colorN)
					r += getResult1(colorA, colorB, colorL, colorO)

					switch {
					case r > 0:
						product2 = colorA
					case r < 0:
						product2 = colorB
					default:
						product2 = avg4(colorA, colorB, colorC, colorD)
					}
				}

			default:
				product2 = avg4(colorA, colorB, colorC, colorD)

				if colorA == colorC && colorA == colorF && colorB != colorE && colorB == colorJ {
					product = colorA
				} else if colorB == colorE && colorB == colorD && colorA != colorF && colorA == colorI {
					product = colorB
				} else {
					product = avg2(colorA, colorB)
				}

				if colorA == colorB && colorA == colorH && colorG != colorC && colorC == colorM {
					product1 = colorA
				} else if colorC == colorG && colorC == colorD && colorA != colorH && colorA == colorI {
					product1 = colorC
				} else {
					product1 = avg2(colorA, colorC)
				}
			}

			write2x(dest, x, y, [4]P{r1, product, product1, product2})
		}
	}

	return dest
}

// SuperEagle2x upscales src 2x via the Super Eagle variant of 2xSaI.
// Grounded on pixel_art::sai::super_eagle_2x.
func SuperEagle2x[P pixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled2x(src)

	for y := 0; y < h; y++ {
		yM1, yP1, yP2 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1, xP2 := neighborBounds(x, w)

			colorB1 := src.At(x, yM1)
			colorB2 := src.At(xP1, yM1)

			color4 := src.At(xM1, y)
			color5 := src.At(x, y)
			color6 := src.At(xP1, y)
			colorS2 := src.At(xP2, y)

			color1 := src.At(xM1, yP1)
			color2 := src.At(x, yP1)
			color3 := src.At(xP1, yP1)
			colorS1 := src.At(xP2, yP1)

			colorA1 := src.At(x, yP2)
			colorA2 := src.At(xP1, yP2)

			var product1a, product1b, product2a, product2b P

			switch {
			case color2 == color6 && color5 != color3:
				product1b = color2
				product2a = color2
				if color1 == color2 || color6 == colorB2 {
					i := avg2(color2, color5)
					product1a = avg2(color2, i)
				} else {
					product1a = avg2(color5, color6)
				}

				if color6 == colorS2 || color2 == colorA1 {
					i := avg2(color2, color3)
					product2b = avg2(color2, i)
				} else {
					product2b = avg2(color2, color3)
				}

			case color5 == color3 && color2 != color6:
				product2b = color5
				product1a = color5

				if colorB1 == color5 || color3 == colorS1 {
					i := avg2(color5, color6)
					product1b = avg2(color5, i)
				} else {
					product1b = avg2(color5, color6)
				}

				if color3 == colorA2 || color4 == color5 {
					i := avg2(color5, color2)
					product2a = avg2(color5, i)
				} else {
					product2a = avg2(color2, color3)
				}

			case color5 == color3 && color2 == color6:
				r := 0
				r += getResult1(color6, color5, color1, colorA1)
				r += getResult1(color6, color5, color4, colorB1)
				r += getResult1(color6, color5, colorA2, colorS1)
				r += getResult1(color6, color5, colorB2, colorS2)

				switch {
				case r > 0:
					product1b, product2a = color2, color2
					i := avg2(color5, color6)
					product1a, product2b = i, i
				case r < 0:
					product2b, product1a = color5, color5
					i := avg2(color5, color6)
					product1b, product2a = i, i
				default:
					product2b, product1a = color5, color5
					product1b, product2a = color2, color2
				}

			default:
				i := avg2(color2, color6)
				product2b = avg4(color3, color3, color3, i)
				product1a = avg4(color5, color5, color5, i)

				i = avg2(color5, color3)
				product2a = avg4(color2, color2, color2, i)
				product1b = avg4(color6, color6, color6, i)
			}

			write2x(dest, x, y, [4]P{product1a, product1b, product2a, product2b})
		}
	}

	return dest
}

// SuperSai2x upscales src 2x via the Super 2xSaI variant. Grounded on
// pixel_art::sai::super_sai_2x.
func SuperSai2x[P pixel[P]](src raster.Image[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	dest := scaled2x(src)

	for y := 0; y < h; y++ {
		yM1, yP1, yP2 := neighborBounds(y, h)
		for x := 0; x < w; x++ {
			xM1, xP1, xP2 := neighborBounds(x, w)

			colorB0 := src.At(xM1, yM1)
			colorB1 := src.At(x, yM1)
			colorB2 := src.At(xP1, yM1)
			colorB3 := src.At(xP2, yM1)

			color4 := src.At(xM1, y)
			color5 := src.At(x, y)
			color6 := src.At(xP1, y)
			colorS2 := src.At(xP2, y)

			color1 := src.At(xM1, yP1)
			color2 := src.At(x, yP1)
			color3 := src.At(xP1, yP1)
			colorS1 := src.At(xP2, yP1)

			colorA0 := src.At(xM1, yP2)
			colorA1 := src.At(x, yP2)
			colorA2 := src.At(xP1, yP2)
			colorA3 := src.At(xP2, yP2)

			var product1a, product1b, product2a, product2b P

			switch {
			case color2 == color6 && color5 != color3:
				product2b, product1b = color2, color2
			case color5 == color3 && color2 != color6:
				product2b, product1b = color5, color5
			case color5 == color3 && color2 == color6:
				r := 0
				r += getResult1(color6, color5, color1, colorA1)
				r += getResult1(color6, color5, color4, colorB1)
				r += getResult1(color6, color5, colorA2, colorS1)
				r += getResult1(color6, color5, colorB2, colorS2)

				switch {
				case r > 0:
					product2b, product1b = color6, color6
				case r < 0:
					product2b, product1b = color5, color5
				default:
					i := avg2(color5, color6)
					product2b, product1b = i, i
				}
			default:
				if color6 == color3 && color3 == colorA1 && color2 != colorA2 && color3 != colorA0 {
					product2b = avg4(color3, color3, color3, color2)
				} else if color5 == color2 && color2 == colorA2 && colorA1 != color3 && color2 != colorA3 {
					product2b = avg4(color2, color2, color2, color3)
				} else {
					product2b = avg2(color2, color3)
				}

				if color6 == color3 && color6 == colorB1 && color5 != colorB2 && color6 != colorB0 {
					product1b = avg4(color6, color6, color6, color5)
				} else if color5 == color2 && color5 == colorB2 && colorB1 != color6 && color5 != colorB3 {
					product1b = avg4(color6, color5, color5, color5)
				} else {
					product1b = avg2(color5, color6)
				}
			}

			if (color5 == color3 && color2 != color6 && color4 == color5 && color5 != colorA2) ||
				(color5 == color1 && color6 == color5 && color4 != color2 && color5 != colorA0) {
				product2a = avg2(color2, color5)
			} else {
				product2a = color2
			}

			if (color2 == color6 && color5 != color3 && color1 == color2 && color2 != colorB2) ||
				(color4 == color2 && color3 == color2 && color1 != color5 && color2 != colorB0) {
				product1a = avg2(color2, color5)
			} else {
				product1a = color5
			}

			write2x(dest, x, y, [4]P{product1a, product1b, product2a, product2b})
		}
	}

	return dest
}

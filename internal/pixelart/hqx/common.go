// Package hqx implements the HQx family of pixel-art upscalers
// (hq2x/hq3x/hq4x). Grounded on pixel_art::hqx, itself translated from
// the original hqx C++ source (https://code.google.com/archive/p/hqx/).
//
// The reference hq2x/hq3x/hq4x sources are multi-thousand-line hand-
// unrolled switches over the 8-bit (hq2x) or extended (hq3x/hq4x)
// neighbor-pattern code. This port computes no pattern code: it uses the
// same YUV-equality predicate and the same interp1..interp10 blend
// vocabulary, and dispatches each output pixel from a small, composable
// per-corner rule that compares neighbor pairs directly instead of a
// 256-way literal match. It is not
// bit-exact against the original pattern table for every one of its 256
// cases — see DESIGN.md for the scope reduction this represents.
package hqx

import "github.com/AnyUserName/rasterops/internal/raster"

type blendable[P any] interface {
	raster.Pixel[P]
}

func interp1[P blendable[P]](a, b P) P { return a.Scale(3).Add(b).Scale(0.25) }
func interp2[P blendable[P]](a, b, c P) P {
	return a.Scale(2).Add(b).Add(c).Scale(0.25)
}
func interp3[P blendable[P]](a, b P) P { return a.Scale(7).Add(b).Scale(0.125) }
func interp4[P blendable[P]](a, b, c P) P {
	return a.Scale(2).Add(b.Add(c).Scale(7)).Scale(0.0625)
}
func interp5[P blendable[P]](a, b P) P { return a.Add(b).Scale(0.5) }
func interp6[P blendable[P]](a, b, c P) P {
	return a.Scale(5).Add(b.Scale(2)).Add(c).Scale(0.125)
}
func interp7[P blendable[P]](a, b, c P) P {
	return a.Scale(6).Add(b).Add(c).Scale(0.125)
}
func interp8[P blendable[P]](a, b P) P { return a.Scale(5).Add(b.Scale(3)).Scale(0.125) }
func interp9[P blendable[P]](a, b, c P) P {
	return a.Scale(2).Add(b.Add(c).Scale(3)).Scale(0.125)
}
func interp10[P blendable[P]](a, b, c P) P {
	return a.Scale(14).Add(b).Add(c).Scale(0.0625)
}

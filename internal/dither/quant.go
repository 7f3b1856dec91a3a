package dither

import (
	"math"

	"github.com/AnyUserName/rasterops/internal/raster"
)

// ErrorCombinator folds accumulated quantization error back into a color
// before it is quantized.
type ErrorCombinator[P raster.Pixel[P]] interface {
	CombineError(color, errv P) P
}

// ColorLookup maps a color to its nearest representable color and
// reports the residual error.
type ColorLookup[P raster.Pixel[P]] interface {
	NearestColor(color P) P
	Error(color, nearest P) P
}

// Quantizer is both halves a ditherer needs.
type Quantizer[P raster.Pixel[P]] interface {
	ErrorCombinator[P]
	ColorLookup[P]
}

// BoundError clamps the combined color to [0, 1] after folding in error.
// Grounded on dither::quant::BoundError, used with palette quantizers
// whose error is not a priori bounded.
type BoundError[P raster.Pixel[P]] struct{}

func (BoundError[P]) CombineError(color, errv P) P {
	return color.Add(errv).Clip(0, 1)
}

// ChannelQuantizer rounds every component of a pixel independently to
// one of PerChannel equally spaced levels in [0, 1]. Grounded on
// dither::quant::ChannelQuantization. The spec's two diverging rounding
// rules (floor(x*f+0.5) for the scalar case, round(x*f) for the vector
// case) are unified here to floor(x*f+0.5) for every pixel kind.
type ChannelQuantizer[P raster.Pixel[P]] struct {
	perChannel int
	factor     float32
	factorInv  float32
	fromFlat   func([]float32) P
}

func newChannelQuantizer[P raster.Pixel[P]](perChannel int, fromFlat func([]float32) P) ChannelQuantizer[P] {
	if perChannel < 2 {
		panic("dither: per_channel must be >= 2")
	}
	f := float32(perChannel - 1)
	return ChannelQuantizer[P]{perChannel: perChannel, factor: f, factorInv: 1 / f, fromFlat: fromFlat}
}

// NewChannelQuantizerGray, ...Vec2, ...Vec3, ...Vec4 build a
// ChannelQuantizer for each concrete pixel kind.
func NewChannelQuantizerGray(perChannel int) ChannelQuantizer[raster.Gray] {
	return newChannelQuantizer[raster.Gray](perChannel, func(f []float32) raster.Gray { return raster.Gray{V: f[0]} })
}
func NewChannelQuantizerVec2(perChannel int) ChannelQuantizer[raster.Vec2] {
	return newChannelQuantizer[raster.Vec2](perChannel, func(f []float32) raster.Vec2 { return raster.Vec2{X: f[0], Y: f[1]} })
}
func NewChannelQuantizerVec3(perChannel int) ChannelQuantizer[raster.Vec3] {
	return newChannelQuantizer[raster.Vec3](perChannel, func(f []float32) raster.Vec3 {
		return raster.Vec3{X: f[0], Y: f[1], Z: f[2]}
	})
}
func NewChannelQuantizerVec4(perChannel int) ChannelQuantizer[raster.Vec4] {
	return newChannelQuantizer[raster.Vec4](perChannel, func(f []float32) raster.Vec4 {
		return raster.Vec4{X: f[0], Y: f[1], Z: f[2], W: f[3]}
	})
}

func (q ChannelQuantizer[P]) PerChannel() int { return q.perChannel }

// CombineError does not clip: color plus the accumulated diffusion error
// can leave [0, 1]. NearestColor clamps each component when it
// quantizes.
func (q ChannelQuantizer[P]) CombineError(color, errv P) P { return color.Add(errv) }

func (q ChannelQuantizer[P]) NearestColor(color P) P {
	flat := color.Flatten()
	out := make([]float32, len(flat))
	for i, v := range flat {
		out[i] = quantizeComponent(v, q.factor, q.factorInv)
	}
	return q.fromFlat(out)
}

func (q ChannelQuantizer[P]) Error(color, nearest P) P { return color.Sub(nearest) }

func quantizeComponent(x, factor, factorInv float32) float32 {
	v := float32(math.Floor(float64(x*factor+0.5))) * factorInv
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// ColorPalette quantizes to the nearest color in a fixed palette.
// Grounded on dither::quant::ColorPalette/Lookup — the Rust source
// falls back to an R-tree for palettes of 300+ colors ("really fast"
// linear scan below that). This port mirrors the cutoff: palettes under
// kdTreeThreshold colors use linear scan, larger ones build a static
// k-d tree once (internal/dither/kdtree.go) over the palette's color-
// space coordinates.
type ColorPalette[P raster.Pixel[P]] struct {
	colors []P
	error  ErrorCombinator[P]
	tree   *kdTree
}

// NewColorPalette builds a palette quantizer. Panics on an empty
// palette, mirroring the source's assert.
func NewColorPalette[P raster.Pixel[P]](colors []P, errorComb ErrorCombinator[P]) ColorPalette[P] {
	if len(colors) == 0 {
		panic("dither: palette must contain at least one color")
	}
	cp := make([]P, len(colors))
	copy(cp, colors)
	pal := ColorPalette[P]{colors: cp, error: errorComb}
	if len(cp) >= kdTreeThreshold {
		points := make([][]float32, len(cp))
		for i, c := range cp {
			points[i] = c.Flatten()
		}
		pal.tree = buildKDTree(points)
	}
	return pal
}

func (p ColorPalette[P]) NearestColor(color P) P {
	target := color.Flatten()
	if p.tree != nil {
		return p.colors[p.tree.nearest(target)]
	}
	best := p.colors[0]
	bestDist := distance2(best.Flatten(), target)
	for _, c := range p.colors[1:] {
		d := distance2(c.Flatten(), target)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (p ColorPalette[P]) Error(color, nearest P) P { return color.Sub(nearest) }

func (p ColorPalette[P]) CombineError(color, errv P) P { return p.error.CombineError(color, errv) }

// Quantize replaces every pixel with its nearest color under quant, with
// no error diffusion. Grounded on dither::quant::quantize.
func Quantize[P raster.Pixel[P]](img *raster.Image[P], quant ColorLookup[P]) {
	img.Change(func(p P) P { return quant.NearestColor(p) })
}

// QuantizeNDim replaces every channel value of an NDimImage with its
// nearest of PerChannel levels, specializing to a binary threshold at
// PerChannel == 2. Grounded on dither::quant::quantize_ndim.
func QuantizeNDim(img raster.NDimImage, spec ChannelQuantizerSpec) {
	if spec.PerChannel == 2 {
		for i, v := range img.Data {
			if v >= 0.5 {
				img.Data[i] = 1
			} else {
				img.Data[i] = 0
			}
		}
		return
	}
	f := float32(spec.PerChannel - 1)
	fInv := 1 / f
	for i, v := range img.Data {
		img.Data[i] = quantizeComponent(v, f, fInv)
	}
}

func distance2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Package palette extracts the set of unique colors present in an
// image, for use as a dither.ColorPalette built directly from source
// data instead of a hand-specified one. Grounded on
// image_ops::palette::{extract_unique_const, extract_unique_ndim}
// (original_source).
package palette

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/AnyUserName/rasterops/internal/raster"
	"github.com/AnyUserName/rasterops/internal/rerr"
)

// ExtractUniqueNDim collects every distinct color in src (channels
// interleaved, row-major) and returns them as a single-row NDimImage,
// sorted by approximate luminance. Returns a *rerr.PaletteTooLarge if
// more than maxColors unique colors are found, mirroring
// extract_unique_const's TooManyColors error.
func ExtractUniqueNDim(src raster.NDimImage, maxColors int) (raster.NDimImage, error) {
	channels := src.Channels()
	if channels == 0 {
		return raster.NDimImage{}, rerr.NewInvalidArgument("palette extraction requires at least 1 channel")
	}

	seen := make(map[string][]float32)
	var order []string
	for i := 0; i+channels <= len(src.Data); i += channels {
		c := src.Data[i : i+channels]
		key := colorKey(c)
		if _, ok := seen[key]; !ok {
			cp := make([]float32, channels)
			copy(cp, c)
			seen[key] = cp
			order = append(order, key)
		}
	}

	if len(seen) > maxColors {
		return raster.NDimImage{}, &rerr.PaletteTooLarge{Max: maxColors, Actual: len(seen)}
	}

	colors := make([][]float32, 0, len(seen))
	for _, key := range order {
		colors = append(colors, seen[key])
	}
	sortByLuminance(colors, channels)

	data := make([]float32, 0, len(colors)*channels)
	for _, c := range colors {
		data = append(data, c...)
	}
	shape := raster.Shape{Width: len(colors), Height: 1, Channels: channels}
	return raster.NewNDimImage(shape, data)
}

// colorKey packs a color's raw float32 bits into a comparable string key,
// the Go analog of the Rust source's [u32; N] dedup key (f32::to_bits).
func colorKey(c []float32) string {
	buf := make([]byte, 4*len(c))
	for i, v := range c {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return string(buf)
}

// sortByLuminance orders colors the way the original does: by plain
// value for single-channel, by approximate sRGB luminance (gamma 2.2
// approximated by squaring) for 3-channel, by luminance plus a heavily
// weighted alpha term for 4-channel (transparent colors sort together),
// and by the sum of channels for any other channel count.
func sortByLuminance(colors [][]float32, channels int) {
	key := func(c []float32) float32 {
		switch channels {
		case 1:
			return c[0]
		case 3:
			return luminance(c[0], c[1], c[2])
		case 4:
			return luminance(c[0], c[1], c[2]) + c[3]*10
		default:
			var sum float32
			for _, v := range c {
				sum += v
			}
			return sum
		}
	}
	sort.Slice(colors, func(i, j int) bool {
		return key(colors[i]) < key(colors[j])
	})
}

func luminance(r, g, b float32) float32 {
	return r*r*0.2126 + g*g*0.7152 + b*b*0.0722
}

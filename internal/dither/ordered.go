package dither

import "github.com/AnyUserName/rasterops/internal/raster"

// createThresholdMap builds an n x n Bayer-style threshold map, n a
// power of 2, via bit-interleaving of (x^y, y). Grounded on
// dither::ordered::create_threshold_map
// (https://bisqwit.iki.fi/story/howto/dither/jy/).
func createThresholdMap(n int) []float32 {
	if n <= 0 || n&(n-1) != 0 {
		panic("dither: threshold map size must be a power of 2")
	}
	m := trailingZerosInt(n)
	area := float32(n * n)
	out := make([]float32, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 0
			xc := i ^ j
			yc := i
			bit := 0
			for mask := m - 1; mask >= 0; mask-- {
				v |= ((yc >> mask) & 1) << bit
				bit++
				v |= ((xc >> mask) & 1) << bit
				bit++
			}
			out[i*n+j] = float32(v) / area
		}
	}
	return out
}

func trailingZerosInt(n int) int {
	z := 0
	for n&1 == 0 {
		n >>= 1
		z++
	}
	return z
}

// stretchXRow repeats each of the n source values factor times, for one
// row of width srcW.
func stretchXRow(row []float32, srcW, factor int) []float32 {
	if factor == 1 {
		out := make([]float32, len(row))
		copy(out, row)
		return out
	}
	out := make([]float32, srcW*factor)
	for x := 0; x < srcW; x++ {
		v := row[x]
		for i := 0; i < factor; i++ {
			out[x*factor+i] = v
		}
	}
	return out
}

// tileXRow repeats row (of some width) cyclically out to newWidth.
func tileXRow(row []float32, newWidth int) []float32 {
	out := make([]float32, newWidth)
	srcW := len(row)
	for x := 0; x < newWidth; x++ {
		out[x] = row[x%srcW]
	}
	return out
}

// buildThresholdRows constructs, for each of the n threshold-map rows,
// the full-image-row-width threshold sequence (map values repeated
// `channels` times per pixel, then tiled out to width*channels), and
// applies an optional per-value transform (used by binary dithering to
// fold in the bias term).
func buildThresholdRows(n, channels, width int, transform func(float32) float32) [][]float32 {
	base := createThresholdMap(n)
	rows := make([][]float32, n)
	for i := 0; i < n; i++ {
		row := base[i*n : i*n+n]
		if transform != nil {
			tr := make([]float32, n)
			for j, v := range row {
				tr[j] = transform(v)
			}
			row = tr
		}
		stretched := stretchXRow(row, n, channels)
		rows[i] = tileXRow(stretched, width*channels)
	}
	return rows
}

// OrderedDither applies ordered (Bayer) dithering to an NDimImage in
// place using an n x n threshold map, n a power of 2. Grounded on
// dither::ordered::ordered_dither, including its 2-level specialization.
func OrderedDither(img raster.NDimImage, n int, quant ChannelQuantizerSpec) {
	if n <= 0 || n&(n-1) != 0 {
		panic("dither: n must be a power of 2")
	}
	if quant.PerChannel == 2 {
		binaryOrderedDither(img, n, 0.5)
		return
	}

	f := float32(quant.PerChannel - 1)
	channels := img.Channels()
	rows := buildThresholdRows(n, channels, img.Width(), nil)
	nMask := n - 1

	w, h := img.Width(), img.Height()
	rowLen := w * channels
	for y := 0; y < h; y++ {
		threshold := rows[y&nMask]
		base := y * rowLen
		for i := 0; i < rowLen; i++ {
			v := img.Data[base+i]
			img.Data[base+i] = float32Floor(v*f+threshold[i]) / f
		}
	}
}

func binaryOrderedDither(img raster.NDimImage, n int, binThreshold float32) {
	channels := img.Channels()
	rows := buildThresholdRows(n, channels, img.Width(), func(v float32) float32 { return binThreshold + 0.5 - v })
	nMask := n - 1

	w, h := img.Width(), img.Height()
	rowLen := w * channels
	for y := 0; y < h; y++ {
		threshold := rows[y&nMask]
		base := y * rowLen
		for i := 0; i < rowLen; i++ {
			if img.Data[base+i] >= threshold[i] {
				img.Data[base+i] = 1
			} else {
				img.Data[base+i] = 0
			}
		}
	}
}

func float32Floor(x float32) float32 {
	i := int64(x)
	if float32(i) > x {
		i--
	}
	return float32(i)
}

// ChannelQuantizerSpec describes an NDim channel quantization without
// binding to a concrete typed Pixel kind, since OrderedDither operates
// on the untyped NDimImage.
type ChannelQuantizerSpec struct {
	PerChannel int
}

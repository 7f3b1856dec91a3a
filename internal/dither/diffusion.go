package dither

import "github.com/AnyUserName/rasterops/internal/raster"

// errorRows holds three guarded rows of accumulated error: the current
// row and the next two rows a kernel's taps can reach. Grounded on
// dither::diffusion::ErrorRows; width is padded by maxOffset on each
// side so taps never need bounds checks.
type errorRows[P raster.Pixel[P]] struct {
	rows [3][]P
}

func newErrorRows[P raster.Pixel[P]](width int) *errorRows[P] {
	w := width + maxOffset*2
	return &errorRows[P]{rows: [3][]P{make([]P, w), make([]P, w), make([]P, w)}}
}

func (e *errorRows[P]) rotate() {
	e.rows[0], e.rows[1], e.rows[2] = e.rows[1], e.rows[2], e.rows[0]
	var zero P
	for i := range e.rows[2] {
		e.rows[2][i] = zero
	}
}

// ErrorDiffusionDither quantizes img in place, diffusing each pixel's
// quantization error forward according to algorithm's kernel. Grounded
// on dither::diffusion::error_diffusion_dither.
func ErrorDiffusionDither[P raster.Pixel[P]](img *raster.Image[P], algorithm Algorithm, quant Quantizer[P]) {
	w, h := img.Width(), img.Height()
	weights := algorithm.Weights()
	rows := newErrorRows[P](w)

	for y := 0; y < h; y++ {
		rows.rotate()
		for x := 0; x < w; x++ {
			errX := x + maxOffset

			color := quant.CombineError(img.At(x, y), rows.rows[0][errX])
			nearest := quant.NearestColor(color)
			errv := quant.Error(color, nearest)

			img.Set(x, y, nearest)

			for _, wt := range weights {
				rows.rows[wt.DY][errX+wt.DX] = rows.rows[wt.DY][errX+wt.DX].Add(errv.Scale(wt.W))
			}
		}
	}
}

// ErrorDiffusionDitherMap is the non-mutating variant: it quantizes src
// into a freshly allocated image of (possibly different) pixel kind N,
// leaving src untouched. Grounded on
// dither::diffusion::error_diffusion_dither_map.
func ErrorDiffusionDitherMap[P raster.Pixel[P]](src raster.Image[P], algorithm Algorithm, quant Quantizer[P]) raster.Image[P] {
	w, h := src.Width(), src.Height()
	weights := algorithm.Weights()
	rows := newErrorRows[P](w)

	dest := raster.NewImageFromConst[P](src.Size(), zeroOf[P]())

	for y := 0; y < h; y++ {
		rows.rotate()
		for x := 0; x < w; x++ {
			errX := x + maxOffset

			color := quant.CombineError(src.At(x, y), rows.rows[0][errX])
			nearest := quant.NearestColor(color)
			errv := quant.Error(color, nearest)

			dest.Set(x, y, nearest)

			for _, wt := range weights {
				rows.rows[wt.DY][errX+wt.DX] = rows.rows[wt.DY][errX+wt.DX].Add(errv.Scale(wt.W))
			}
		}
	}

	return dest
}

func zeroOf[P raster.Pixel[P]]() P {
	var z P
	return z
}

// Package threshold implements component H: binary threshold with
// optional anti-aliased edges. Grounded on image_ops::threshold.
package threshold

import "github.com/AnyUserName/rasterops/internal/raster"

// BinaryThreshold binarizes img in place around threshold. When
// antiAliasing is set, edge pixels (where a 4-neighbor's binarized
// value differs) are softened by averaging the bilinear-interpolated
// area-above-threshold over their four quadrants. Grounded on
// image_ops::threshold::binary_threshold.
func BinaryThreshold(img raster.NDimImage, threshold float32, antiAliasing bool) {
	if !antiAliasing {
		for i, v := range img.Data {
			img.Data[i] = binarize(v, threshold)
		}
		return
	}

	original := make([]float32, len(img.Data))
	copy(original, img.Data)

	for i, v := range img.Data {
		img.Data[i] = binarize(v, threshold)
	}

	c := img.Channels()
	for offset := 0; offset < c; offset++ {
		antiAliasChannel(original, img, threshold, offset, c)
	}
}

func binarize(v, threshold float32) float32 {
	if v > threshold {
		return 1
	}
	return 0
}

func antiAliasChannel(original []float32, dest raster.NDimImage, threshold float32, offset, stride int) {
	w, h := dest.Width(), dest.Height()
	data := dest.Data

	at := func(x, y int) float32 { return data[(y*w+x)*stride+offset] }
	origAt := func(x, y int) float32 { return original[(y*w+x)*stride+offset] }

	edges := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 1; x < w; x++ {
			i0, i1 := y*w+x-1, y*w+x
			if at(x-1, y) != at(x, y) {
				edges[i0] = true
				edges[i1] = true
			}
		}
	}
	for x := 0; x < w; x++ {
		for y := 1; y < h; y++ {
			i0, i1 := (y-1)*w+x, y*w+x
			if at(x, y-1) != at(x, y) {
				edges[i0] = true
				edges[i1] = true
			}
		}
	}

	clampDim := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}

	for y := 0; y < h; y++ {
		yt := clampDim(y-1, h-1)
		yc := y
		yb := clampDim(y+1, h-1)
		for x := 0; x < w; x++ {
			if !edges[y*w+x] {
				continue
			}
			xl := clampDim(x-1, w-1)
			xc := x
			xr := clampDim(x+1, w-1)

			pTl, pTc, pTr := origAt(xl, yt), origAt(xc, yt), origAt(xr, yt)
			pCl, pCc, pCr := origAt(xl, yc), origAt(xc, yc), origAt(xr, yc)
			pBl, pBc, pBr := origAt(xl, yb), origAt(xc, yb), origAt(xr, yb)

			qTl := BiLinear{X0Y0: pCc, X1Y0: pCl, X0Y1: pTc, X1Y1: pTl}.GetFirstQuadrant()
			qTr := BiLinear{X0Y0: pCc, X1Y0: pCr, X0Y1: pTc, X1Y1: pTr}.GetFirstQuadrant()
			qBl := BiLinear{X0Y0: pCc, X1Y0: pCl, X0Y1: pBc, X1Y1: pBl}.GetFirstQuadrant()
			qBr := BiLinear{X0Y0: pCc, X1Y0: pCr, X0Y1: pBc, X1Y1: pBr}.GetFirstQuadrant()

			sumArea := qTl.GetArea(threshold) + qTr.GetArea(threshold) + qBl.GetArea(threshold) + qBr.GetArea(threshold)
			data[(y*w+x)*stride+offset] = sumArea * 0.25
		}
	}
}

// Package fillalpha implements the alpha-fill engine (component G):
// transparent regions of an RGBA image are filled in one of three
// modes. Grounded on image_ops::fill_alpha.
package fillalpha

import (
	"github.com/AnyUserName/rasterops/internal/blend"
	"github.com/AnyUserName/rasterops/internal/fragment"
	"github.com/AnyUserName/rasterops/internal/raster"
	"github.com/AnyUserName/rasterops/internal/raster/grid"
	"github.com/AnyUserName/rasterops/internal/threshold"
)

// Mode selects the fill strategy.
type Mode int

const (
	// ModeFragment repeatedly fragment-blurs the image, self-overlays
	// to thicken coverage, and overlays onto the running result,
	// growing the opaque region from its edges each iteration.
	ModeFragment Mode = iota
	// ModeExtendColor iteratively extends the nearest opaque color into
	// transparent pixels, accelerated by a coarse occupancy grid.
	ModeExtendColor
	// ModeNearest fills every transparent pixel with its single nearest
	// opaque neighbor's color, with no blending — the simplest of the
	// three and the one left most loosely specified by the original
	// Open Questions; implemented here as a one-shot multi-source BFS
	// from every opaque pixel.
	ModeNearest
)

// Options configures Fill.
type Options struct {
	Mode Mode
	// Iterations bounds ModeFragment/ModeExtendColor's growth passes.
	Iterations int
	// FragmentCount is the ring-sample count passed to fragment blur,
	// used only by ModeFragment.
	FragmentCount int
	// MinRadius bounds ModeNearest's BFS search distance in pixels: a
	// transparent pixel farther than MinRadius (4-connected hops) from
	// any opaque pixel is left unfilled. Zero or negative means
	// unlimited.
	MinRadius int
	// AntiAliasing softens ModeNearest's fill boundary: the same
	// bilinear-quadrant area averaging used by component H's
	// BinaryThreshold is applied to the binary fill mask, so edge
	// pixels get a fractional alpha instead of a hard 0/1 cutoff.
	AntiAliasing bool
}

// Fill binarizes img's alpha around threshold, then fills transparent
// pixels according to opts. Grounded on image_ops::fill_alpha::fill_alpha.
func Fill(img *raster.Image[raster.Vec4], threshold float32, opts Options) {
	makeBinaryAlpha(img, threshold)

	switch opts.Mode {
	case ModeFragment:
		fillFragmentBlur(img, opts.Iterations, opts.FragmentCount)
	case ModeExtendColor:
		fillExtendColor(img, opts.Iterations)
	case ModeNearest:
		fillNearest(img, opts.MinRadius, opts.AntiAliasing)
	}
}

func makeBinaryAlpha(img *raster.Image[raster.Vec4], threshold float32) {
	img.Change(func(p raster.Vec4) raster.Vec4 {
		a := float32(0)
		if p.W >= threshold {
			a = 1
		}
		return raster.Vec4{X: p.X * a, Y: p.Y * a, Z: p.Z * a, W: a}
	})
}

// fillFragmentBlur grows the opaque region by repeatedly fragment-
// blurring the original image at doubling radii, self-overlaying to
// thicken alpha, and overlaying the growing result onto the running
// image. Grounded on image_ops::fill_alpha::fill_alpha_fragment_blur.
func fillFragmentBlur(img *raster.Image[raster.Vec4], iterations, fragmentCount int) {
	if iterations <= 0 {
		return
	}

	original := img.Clone()

	for i := 0; i < iterations; i++ {
		radius := float32(int(1) << uint(i))
		angleOffset := float32(i)

		buffer := fragment.FragmentBlurAlpha(original, radius, fragmentCount, angleOffset)
		blend.OverlaySelfMut(&buffer, 2)
		blend.OverlayMut(&buffer, *img)
		*img = buffer
	}

	makeBinaryAlpha(img, 0.01)
}

const cellSize = grid.DefaultCellSize

func isToFill(img raster.Image[raster.Vec4], x, y int) bool {
	w, h := img.Width(), img.Height()
	p := img.At(x, y)
	if p.W != 0 {
		return false
	}
	return (x > 0 && img.At(x-1, y).W != 0) ||
		(x < w-1 && img.At(x+1, y).W != 0) ||
		(y > 0 && img.At(x, y-1).W != 0) ||
		(y < h-1 && img.At(x, y+1).W != 0)
}

func isTransparent(img raster.Image[raster.Vec4], x, y int) bool {
	return img.At(x, y).W == 0
}

func getFill(img raster.Image[raster.Vec4], x, y int) (raster.Vec4, bool) {
	if img.At(x, y).W != 0 {
		return raster.Vec4{}, false
	}
	w, h := img.Width(), img.Height()
	var acc raster.Vec4
	if x > 0 {
		acc = acc.Add(img.At(x-1, y))
	}
	if x < w-1 {
		acc = acc.Add(img.At(x+1, y))
	}
	if y > 0 {
		acc = acc.Add(img.At(x, y-1))
	}
	if y < h-1 {
		acc = acc.Add(img.At(x, y+1))
	}
	if acc.W == 0 {
		return raster.Vec4{}, false
	}
	return acc.Scale(1 / acc.W), true
}

// fillExtendColor iteratively extends the nearest opaque color into
// transparent pixels, grid-accelerated: work is tracked at the coarse
// cell level and only cells that still contain fillable pixels are
// revisited, with periodic grid refresh (every cellSize iterations) and
// dilation (the iteration after refresh) as the fillable region shrinks
// and moves inward. Grounded on
// image_ops::fill_alpha::fill_alpha_extend / its inlined Grid type.
func fillExtendColor(img *raster.Image[raster.Vec4], iterations int) {
	if iterations <= 0 {
		return
	}

	g := grid.New(img.Size(), cellSize)
	g.FillWithPixels(func(x, y int) bool { return isToFill(*img, x, y) })

	type fillEntry struct {
		x, y  int
		color raster.Vec4
	}
	fills := make([]fillEntry, 0, (img.Width()+img.Height())*4)

	for i := 0; i < iterations; i++ {
		if i > 0 && i%cellSize == 0 {
			g.AndAny(func(x, y int) bool { return isToFill(*img, x, y) })
		}
		if i%cellSize == 1 {
			g.ExpandOne()
			g.AndAny(func(x, y int) bool { return isTransparent(*img, x, y) })
		}

		fills = fills[:0]
		g.ForEachTrue(func(cell grid.TrueCell) {
			for y := cell.YStart; y < cell.YEnd; y++ {
				for x := cell.XStart; x < cell.XEnd; x++ {
					if fill, ok := getFill(*img, x, y); ok {
						fills = append(fills, fillEntry{x, y, fill})
					}
				}
			}
		})

		if len(fills) == 0 {
			break
		}
		for _, f := range fills {
			img.Set(f.x, f.y, f.color)
		}
	}
}

// fillNearest fills every transparent pixel with the color of an opaque
// pixel closest to it in 4-connected hops (not Euclidean distance; no
// blending), via repeated 1-pixel
// dilation from every opaque seed, bounded by minRadius hops when
// minRadius > 0. When antiAliasing is set, the resulting binary fill
// mask is softened at its boundary (the ModeNearest analogue of
// component H's BinaryThreshold anti-aliasing) instead of cutting off
// sharply. This is the abstract semantics the original Open Questions
// left for "Mode Nearest" with no reference implementation to ground
// on; minRadius/antiAliasing are named parameters with no documented
// behavior in the source, so their interpretation here is a recorded
// design decision (see DESIGN.md).
func fillNearest(img *raster.Image[raster.Vec4], minRadius int, antiAliasing bool) {
	w, h := img.Width(), img.Height()
	filled := make([]bool, w*h)
	for i, p := range img.Data {
		filled[i] = p.W != 0
	}

	remaining := 0
	for _, f := range filled {
		if !f {
			remaining++
		}
	}
	if remaining == 0 {
		return
	}

	type coord struct{ x, y int }
	frontier := make([]coord, 0, w+h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if filled[y*w+x] {
				frontier = append(frontier, coord{x, y})
			}
		}
	}

	hop := 0
	for len(frontier) > 0 && remaining > 0 {
		if minRadius > 0 && hop >= minRadius {
			break
		}
		hop++
		next := frontier[:0:0]
		for _, c := range frontier {
			color := img.At(c.x, c.y)
			for _, d := range [4]coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := c.x+d.x, c.y+d.y
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				idx := ny*w + nx
				if filled[idx] {
					continue
				}
				filled[idx] = true
				color.W = 1
				img.Set(nx, ny, color)
				remaining--
				next = append(next, coord{nx, ny})
			}
		}
		frontier = next
	}

	if !antiAliasing {
		return
	}

	mask := make([]float32, w*h)
	for i, f := range filled {
		if f {
			mask[i] = 1
		}
	}
	maskImg, err := raster.NewNDimImage(raster.Shape{Width: w, Height: h, Channels: 1}, mask)
	if err != nil {
		return
	}
	threshold.BinaryThreshold(maskImg, 0.5, true)

	for i := range maskImg.Data {
		if !filled[i] {
			continue
		}
		y, x := i/w, i%w
		p := img.At(x, y)
		p.W = maskImg.Data[i]
		img.Set(x, y, p)
	}
}

package grid

import "github.com/AnyUserName/rasterops/internal/raster"

// DefaultCellSize is the default coarse-cell size used by the alpha-fill
// engine, matching the Rust source's const generic default.
const DefaultCellSize = 8

// Grid is a coarse occupancy structure over an image: one bit per
// CellSize x CellSize block of pixels.
type Grid struct {
	CellSize int
	bits     FixedBits
	cellsW   int
	cellsH   int
	pixels   raster.Size
}

// New allocates a Grid covering pixels, with ceil(w/cellSize) *
// ceil(h/cellSize) cells.
func New(pixels raster.Size, cellSize int) Grid {
	cw := (pixels.Width + cellSize - 1) / cellSize
	ch := (pixels.Height + cellSize - 1) / cellSize
	return Grid{
		CellSize: cellSize,
		bits:     NewFixedBits(cw * ch),
		cellsW:   cw,
		cellsH:   ch,
		pixels:   pixels,
	}
}

func (g Grid) CellsWidth() int  { return g.cellsW }
func (g Grid) CellsHeight() int { return g.cellsH }

// cellToPixelDim maps a cell-space [0, cellsDim) index to the clamped
// pixel-space [start, end) it covers.
func (g Grid) cellToPixelDim(cell, pixelsDim int) (start, end int) {
	start = cell * g.CellSize
	end = start + g.CellSize
	if end > pixelsDim {
		end = pixelsDim
	}
	return
}

// CellToPixel returns the pixel-space rectangle a cell covers.
func (g Grid) CellToPixel(cx, cy int) (xStart, xEnd, yStart, yEnd int) {
	xStart, xEnd = g.cellToPixelDim(cx, g.pixels.Width)
	yStart, yEnd = g.cellToPixelDim(cy, g.pixels.Height)
	return
}

func (g Grid) index(cx, cy int) int { return cy*g.cellsW + cx }

func (g Grid) Get(cx, cy int) bool { return g.bits.Get(g.index(cx, cy)) }
func (g *Grid) Set(cx, cy int, v bool) { g.bits.Set(g.index(cx, cy), v) }

// FillWithPixels marks a cell true iff any pixel it covers satisfies
// predicate(x, y).
func (g *Grid) FillWithPixels(predicate func(x, y int) bool) {
	for cy := 0; cy < g.cellsH; cy++ {
		yStart, yEnd := g.cellToPixelDim(cy, g.pixels.Height)
		for cx := 0; cx < g.cellsW; cx++ {
			xStart, xEnd := g.cellToPixelDim(cx, g.pixels.Width)
			found := false
			for y := yStart; y < yEnd && !found; y++ {
				for x := xStart; x < xEnd; x++ {
					if predicate(x, y) {
						found = true
						break
					}
				}
			}
			g.Set(cx, cy, found)
		}
	}
}

// AndAny keeps only cells that are already true AND contain at least one
// pixel satisfying predicate.
func (g *Grid) AndAny(predicate func(x, y int) bool) {
	for cy := 0; cy < g.cellsH; cy++ {
		yStart, yEnd := g.cellToPixelDim(cy, g.pixels.Height)
		for cx := 0; cx < g.cellsW; cx++ {
			if !g.Get(cx, cy) {
				continue
			}
			xStart, xEnd := g.cellToPixelDim(cx, g.pixels.Width)
			found := false
			for y := yStart; y < yEnd && !found; y++ {
				for x := xStart; x < xEnd; x++ {
					if predicate(x, y) {
						found = true
						break
					}
				}
			}
			g.Set(cx, cy, found)
		}
	}
}

// ExpandOne dilates the grid by one cell in every direction, diagonals
// included (a 3x3 neighborhood): first expand vertically (OR each row
// into its neighbors), then expand each row horizontally via
// FixedBits.ExpandOne.
func (g *Grid) ExpandOne() {
	rowBits := make([]FixedBits, g.cellsH)
	for y := 0; y < g.cellsH; y++ {
		row := NewFixedBits(g.cellsW)
		for x := 0; x < g.cellsW; x++ {
			row.Set(x, g.Get(x, y))
		}
		rowBits[y] = row
	}

	expanded := make([]FixedBits, g.cellsH)
	for y := 0; y < g.cellsH; y++ {
		// Deep-copy this row before mutating: rowBits[y] is still the
		// "original" pre-dilation neighbor input for rows y-1 and y+1,
		// processed later in this same loop, and Or/ExpandOne mutate
		// their receiver's backing array in place.
		combined := rowBits[y].Clone()
		if y > 0 {
			combined.Or(rowBits[y-1])
		}
		if y+1 < g.cellsH {
			combined.Or(rowBits[y+1])
		}
		combined.ExpandOne()
		expanded[y] = combined
	}

	for y := 0; y < g.cellsH; y++ {
		for x := 0; x < g.cellsW; x++ {
			g.Set(x, y, expanded[y].Get(x))
		}
	}
}

// TrueCell describes one true cell discovered by ForEachTrue: the pixel
// ranges it covers and whether it is strictly interior (all 4
// neighboring cells exist).
type TrueCell struct {
	XStart, XEnd, YStart, YEnd int
	IsInner                    bool
	CX, CY                     int
}

// ForEachTrue calls f once for every true cell.
func (g Grid) ForEachTrue(f func(TrueCell)) {
	for cy := 0; cy < g.cellsH; cy++ {
		for cx := 0; cx < g.cellsW; cx++ {
			if !g.Get(cx, cy) {
				continue
			}
			xStart, xEnd, yStart, yEnd := g.CellToPixel(cx, cy)
			inner := g.cellsW > 1 && g.cellsH > 1 &&
				cx > 0 && cx < g.cellsW-1 && cy > 0 && cy < g.cellsH-1
			f(TrueCell{XStart: xStart, XEnd: xEnd, YStart: yStart, YEnd: yEnd, IsInner: inner, CX: cx, CY: cy})
		}
	}
}

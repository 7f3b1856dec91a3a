package dither

// hilbertScan enumerates every (x, y) in a w x h rectangle along a
// generalized Hilbert curve, so that consecutive points are always
// grid-adjacent, for width/height that need not be equal or powers of
// two. This is the public "generalized Hilbert curve for rectangular
// domains" algorithm (Jakub Červený); the Rust source instead calls the
// zhang_hilbert crate's ArbHilbertScan32, which no Go port in this
// module's dependency pack provides (see DESIGN.md) — this produces a
// different but equivalent locality-preserving traversal satisfying the
// same contract Riemersma dithering needs: every pixel visited exactly
// once, each step moving to a neighboring pixel.
func hilbertScan(w, h int, visit func(x, y int)) {
	if w <= 0 || h <= 0 {
		return
	}
	generalizedHilbert(0, 0, w, 0, 0, h, visit)
}

// generalizedHilbert walks the rectangle spanned by vectors (ax,ay) and
// (bx,by) from (x,y), recursively splitting along the longer axis.
func generalizedHilbert(x, y, ax, ay, bx, by int, visit func(x, y int)) {
	w := iabs(ax + ay)
	h := iabs(bx + by)

	dax := isign(ax)
	day := isign(ay)
	dbx := isign(bx)
	dby := isign(by)

	if h == 1 {
		for i := 0; i < w; i++ {
			visit(x, y)
			x += dax
			y += day
		}
		return
	}
	if w == 1 {
		for i := 0; i < h; i++ {
			visit(x, y)
			x += dbx
			y += dby
		}
		return
	}

	ax2, ay2 := ax/2, ay/2
	bx2, by2 := bx/2, by/2
	w2 := iabs(ax2 + ay2)
	h2 := iabs(bx2 + by2)

	if 2*w > 3*h {
		if w2%2 != 0 && w > 2 {
			ax2 += dax
			ay2 += day
		}
		generalizedHilbert(x, y, ax2, ay2, bx, by, visit)
		generalizedHilbert(x+ax2, y+ay2, ax-ax2, ay-ay2, bx, by, visit)
		return
	}

	if h2%2 != 0 && h > 2 {
		bx2 += dbx
		by2 += dby
	}

	generalizedHilbert(x, y, bx2, by2, ax2, ay2, visit)
	generalizedHilbert(x+bx2, y+by2, ax, ay, bx-bx2, by-by2, visit)
	generalizedHilbert(
		x+(ax-dax)+(bx2-dbx), y+(ay-day)+(by2-dby),
		-bx2, -by2, -(ax - ax2), -(ay - ay2), visit,
	)
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

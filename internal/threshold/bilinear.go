package threshold

import "math"

// BiLinear describes a bilinear patch over the unit square [0,1]x[0,1]
// via its four corner values: f(x,y) = x0y0 + (x1y0-x0y0)*x +
// (x0y1-x0y0)*y + (x1y1-x1y0-x0y1+x0y0)*x*y.
//
// Grounded on the *contract* of dither threshold.rs's BiLinear type: the
// implementation file (bilinear.rs) is missing from the retrieval pack
// (see DESIGN.md), so GetArea below is derived from first principles —
// the exact antiderivative of the bilinear level-set integral — rather
// than ported line-for-line.
type BiLinear struct {
	X0Y0, X1Y0, X0Y1, X1Y1 float32
}

// GetFirstQuadrant is the identity on this representation: every caller
// in threshold.go already constructs BiLinear with X0Y0 as the center
// pixel and the other three corners as its x/y/diagonal neighbors, which
// is already the canonical "first quadrant" layout.
func (b BiLinear) GetFirstQuadrant() BiLinear { return b }

const bilinearEps = 1e-6

// GetArea returns the fraction of the unit square where the bilinear
// patch exceeds threshold.
func (b BiLinear) GetArea(threshold float32) float32 {
	a := float64(b.X0Y0)
	bb := float64(b.X1Y0) - a
	c := float64(b.X0Y1) - a
	d := float64(b.X1Y1) - float64(b.X1Y0) - float64(b.X0Y1) + a
	t := float64(threshold) - a

	if math.Abs(d) < bilinearEps {
		return float32(linearArea(bb, c, t))
	}

	breakpoints := []float64{0, 1}
	if math.Abs(d) > bilinearEps {
		breakpoints = append(breakpoints, -bb/d)
	}
	if math.Abs(c) > bilinearEps {
		breakpoints = append(breakpoints, t/c)
	}
	if math.Abs(c+d) > bilinearEps {
		breakpoints = append(breakpoints, (t-bb)/(c+d))
	}

	ys := clipSortUnique(breakpoints)

	area := 0.0
	for i := 0; i+1 < len(ys); i++ {
		ylo, yhi := ys[i], ys[i+1]
		if yhi-ylo < bilinearEps {
			continue
		}
		area += mobiusRowArea(bb, c, d, t, ylo, yhi)
	}
	return float32(clamp01(area))
}

// linearArea handles the degenerate d == 0 case: f(x,y) = a + bb*x + c*y
// is a plane, so the level set is a straight line and the above-
// threshold region is a polygon with an elementary closed form.
func linearArea(bb, c, t float64) float64 {
	if math.Abs(bb) < bilinearEps {
		// No x dependence: each row is either entirely in or out.
		if math.Abs(c) < bilinearEps {
			if t < 0 {
				return 1
			}
			return 0
		}
		yCrit := clamp01(t / c)
		if c > 0 {
			return clamp01(1 - yCrit)
		}
		return clamp01(yCrit)
	}

	// x_thresh(y) = (t - c*y) / bb, linear in y; integrate the clamped
	// trapezoid exactly by breaking at the y where x_thresh crosses 0/1.
	breakpoints := []float64{0, 1}
	if math.Abs(c) > bilinearEps {
		breakpoints = append(breakpoints, t/c, (t-bb)/c)
	}
	ys := clipSortUnique(breakpoints)

	area := 0.0
	for i := 0; i+1 < len(ys); i++ {
		ylo, yhi := ys[i], ys[i+1]
		if yhi-ylo < bilinearEps {
			continue
		}
		ym := (ylo + yhi) / 2
		xThresh := (t - c*ym) / bb
		var rowArea float64
		if bb > 0 {
			rowArea = clamp01(1 - xThresh)
		} else {
			rowArea = clamp01(xThresh)
		}
		// x_thresh is linear in y and, by construction, does not cross
		// 0 or 1 within this subinterval, so the trapezoid's average
		// height equals its midpoint value.
		area += rowArea * (yhi - ylo)
	}
	return area
}

// mobiusRowArea integrates the exact row area contributed by
// [ylo, yhi], where x_thresh(y) = (t - c*y) / (bb + d*y) is known (by
// construction of the caller's breakpoints) not to cross 0 or 1 and
// bb + d*y not to cross 0 within the interval.
func mobiusRowArea(bb, c, d, t, ylo, yhi float64) float64 {
	ym := (ylo + yhi) / 2
	q := bb + d*ym
	if math.Abs(q) < bilinearEps {
		// The row is independent of x on this slice: f(x,y) = a + c*y.
		if t-c*ym < 0 {
			return yhi - ylo
		}
		return 0
	}

	// Where x_thresh lies outside [0,1] on this slice, every row is either
	// entirely above or entirely below the threshold.
	xm := (t - c*ym) / q
	if xm <= 0 || xm >= 1 {
		if (xm <= 0) == (q > 0) {
			return yhi - ylo
		}
		return 0
	}

	// antideriv(y) of p(y)/q(y), p(y) = t - c*y, q(y) = bb + d*y:
	//   p/q = K/q - c/d,  K = (t*d + c*bb) / d
	//   antideriv(y) = (K/d) * ln|q(y)| - (c/d) * y
	k := (t*d + c*bb) / d
	antideriv := func(y float64) float64 {
		return (k/d)*math.Log(math.Abs(bb+d*y)) - (c/d)*y
	}
	integralPOverQ := antideriv(yhi) - antideriv(ylo)

	if q > 0 {
		return (yhi - ylo) - integralPOverQ
	}
	return integralPOverQ
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clipSortUnique(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		out = append(out, clamp01(v))
	}
	// insertion sort: vs is always tiny (<=5 elements)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	unique := out[:0:0]
	for i, v := range out {
		if i == 0 || v-unique[len(unique)-1] > bilinearEps {
			unique = append(unique, v)
		}
	}
	return unique
}

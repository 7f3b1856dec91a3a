// Package resample implements the separable 1-D filtered resampler
// (component D) and its gamma pre/post conversion. Grounded on
// image_ops::scale::{filter,scale,pixel_format} and image_ops::gamma.
package resample

import "math"

// Filter enumerates the twelve reconstruction kernels. Grounded on
// image_ops::scale::filter::Filter.
type Filter int

const (
	Nearest Filter = iota
	Box
	Linear
	Hermite
	CubicCatrom
	CubicMitchell
	CubicBSpline
	Hamming
	Hann
	Lanczos3
	Lagrange
	Gauss
)

// kernel is a weighting function and its support radius.
type kernel struct {
	support float64
	weight  func(x float64) float64
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// cubicBC is the Mitchell-Netravali cardinal cubic B-spline family,
// parameterized by (B, C). Grounded on image_ops::scale::filter::cubic_bc.
func cubicBC(b, c, x float64) float64 {
	if x < 0 {
		x = -x
	}
	x2 := x * x
	x3 := x2 * x
	if x < 1 {
		return ((12-9*b-6*c)*x3 + (-18+12*b+6*c)*x2 + (6 - 2*b)) / 6
	}
	if x < 2 {
		return ((-b-6*c)*x3 + (6*b+30*c)*x2 + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

// lagrange is order-4 Lagrange interpolation via the ImageMagick product
// formula. Grounded on image_ops::scale::filter::lagrange.
func lagrange(x, support float64) float64 {
	if x == 0 {
		return 1
	}
	if x < -support || x > support {
		return 0
	}
	order := int(2 * support)
	n := int(support + x)
	value := 1.0
	for i := 0; i < order; i++ {
		d := float64(n - i)
		if d == 0 {
			continue
		}
		value *= (d - x) / d
	}
	return value
}

// kernelFor maps a Filter to its weighting function and support radius,
// mirroring `impl From<Filter> for resize::Type` in the source — the
// Rust port delegates to the external `resize` crate's built-in kernels
// for Catrom/Mitchell/BSpline/Lanczos3/Gaussian and a custom closure for
// the rest; here every kernel is inlined directly since there is no
// equivalent resize-kernel crate wired into this module's dependency
// set (the teacher depends on disintegration/imaging, which is wired as
// an alternate CLI-side resize path in internal/pipeline, not as the
// kernel source for this package).
func kernelFor(f Filter) kernel {
	switch f {
	case Box:
		return kernel{support: 0.5, weight: func(x float64) float64 {
			if math.Abs(x) <= 0.5 {
				return 1
			}
			return 0
		}}
	case Linear:
		return kernel{support: 1, weight: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1 {
				return 1 - x
			}
			return 0
		}}
	case Hermite:
		return kernel{support: 1, weight: func(x float64) float64 { return cubicBC(0, 0, x) }}
	case CubicCatrom:
		return kernel{support: 2, weight: func(x float64) float64 { return cubicBC(0, 0.5, x) }}
	case CubicMitchell:
		return kernel{support: 2, weight: func(x float64) float64 { return cubicBC(1.0/3, 1.0/3, x) }}
	case CubicBSpline:
		return kernel{support: 2, weight: func(x float64) float64 { return cubicBC(1, 0, x) }}
	case Hamming:
		return kernel{support: 1, weight: func(x float64) float64 {
			return sinc(x*math.Pi) * (0.54 + 0.46*math.Cos(x*math.Pi))
		}}
	case Hann:
		return kernel{support: 1, weight: func(x float64) float64 {
			return sinc(x*math.Pi) * (0.5 + 0.5*math.Cos(x*math.Pi))
		}}
	case Lanczos3:
		return kernel{support: 3, weight: func(x float64) float64 {
			if math.Abs(x) >= 3 {
				return 0
			}
			return sinc(x*math.Pi) * sinc(x*math.Pi/3)
		}}
	case Lagrange:
		return kernel{support: 2, weight: func(x float64) float64 { return lagrange(x, 2) }}
	case Gauss:
		return kernel{support: 2, weight: func(x float64) float64 {
			const sigma = 0.5
			return math.Exp(-(x * x) / (2 * sigma * sigma))
		}}
	default: // Nearest handled separately by the caller
		return kernel{support: 0.5, weight: func(x float64) float64 {
			if math.Abs(x) < 0.5 {
				return 1
			}
			return 0
		}}
	}
}

// clipsOutput reports whether a filter's output should be clipped to
// [0,1] after resampling: every filter except Nearest and Linear may
// overshoot and is clipped, per the documented contract.
func clipsOutput(f Filter) bool {
	return f != Nearest && f != Linear
}

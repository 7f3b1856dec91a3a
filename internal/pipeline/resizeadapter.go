package pipeline

import (
	"math"

	"github.com/AnyUserName/rasterops/internal/resample"
	"github.com/disintegration/imaging"
)

// imagingFilterFor maps a resample.Filter to the equivalent
// disintegration/imaging.ResizeFilter, giving every one of the core
// resampler's twelve kernels a second, library-backed code path: the
// baseline resize step a convert run can select (see applyOperation's
// "imaging" resize backend) alongside the from-scratch separable
// resampler in internal/resample. Grounded on SPEC_FULL.md 4.D's
// dependency-wiring note and the teacher's own imaging.Resize(img, w,
// h, imaging.Lanczos) call site in the original processor.go.
//
// Ten filters have a direct named imaging constant; Lagrange and
// Gauss have no equivalent in the imaging package's built-in set, so
// their kernel functions are restated here from resample's own
// formulas to build a custom imaging.ResizeFilter.
func imagingFilterFor(f resample.Filter) imaging.ResizeFilter {
	switch f {
	case resample.Nearest:
		return imaging.NearestNeighbor
	case resample.Box:
		return imaging.Box
	case resample.Linear:
		return imaging.Linear
	case resample.Hermite:
		return imaging.Hermite
	case resample.CubicCatrom:
		return imaging.CatmullRom
	case resample.CubicMitchell:
		return imaging.MitchellNetravali
	case resample.CubicBSpline:
		return imaging.BSpline
	case resample.Hamming:
		return imaging.Hamming
	case resample.Hann:
		return imaging.Hann
	case resample.Lanczos3:
		return imaging.Lanczos
	case resample.Lagrange:
		return imaging.ResizeFilter{Support: 2, Kernel: lagrangeKernel}
	case resample.Gauss:
		return imaging.ResizeFilter{Support: 2, Kernel: gaussKernel}
	default:
		return imaging.Lanczos
	}
}

// lagrangeKernel restates resample's order-4 Lagrange weight (via the
// ImageMagick product formula) for imaging's ResizeFilter.Kernel shape.
func lagrangeKernel(x float64) float64 {
	const support = 2.0
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

// gaussKernel restates resample's Gaussian weight (sigma=0.5) for
// imaging's ResizeFilter.Kernel shape.
func gaussKernel(x float64) float64 {
	const sigma = 0.5
	return math.Exp(-(x * x) / (2 * sigma * sigma))
}

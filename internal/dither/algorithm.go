// Package dither implements the dithering engine (component E): channel
// and palette quantizers, error-diffusion kernels, ordered dithering and
// Riemersma dithering. Grounded on image_ops::dither::{algorithm,
// diffusion, ordered, quant, riemersma}.
package dither

// Weight is one error-diffusion tap: DY rows below the current pixel,
// DX columns to the right of it (negative is to the left), and the
// fraction of the quantization error it receives.
type Weight struct {
	DY, DX int
	W      float32
}

// Algorithm names one of the eight diffusion kernels.
type Algorithm int

const (
	FloydSteinberg Algorithm = iota
	JarvisJudiceNinke
	Stucki
	Atkinson
	Burkes
	Sierra
	TwoRowSierra
	SierraLite
)

// Weights returns the algorithm's diffusion taps, mirroring each
// DiffusionAlgorithm::define_weights impl.
func (a Algorithm) Weights() []Weight {
	switch a {
	case FloydSteinberg:
		return []Weight{
			{0, 1, 7.0 / 16},
			{1, -1, 3.0 / 16}, {1, 0, 5.0 / 16}, {1, 1, 1.0 / 16},
		}
	case JarvisJudiceNinke:
		return []Weight{
			{0, 1, 7.0 / 48}, {0, 2, 5.0 / 48},
			{1, -2, 3.0 / 48}, {1, -1, 5.0 / 48}, {1, 0, 7.0 / 48}, {1, 1, 5.0 / 48}, {1, 2, 3.0 / 48},
			{2, -2, 1.0 / 48}, {2, -1, 3.0 / 48}, {2, 0, 5.0 / 48}, {2, 1, 3.0 / 48}, {2, 2, 1.0 / 48},
		}
	case Stucki:
		return []Weight{
			{0, 1, 8.0 / 42}, {0, 2, 4.0 / 42},
			{1, -2, 2.0 / 42}, {1, -1, 4.0 / 42}, {1, 0, 8.0 / 42}, {1, 1, 4.0 / 42}, {1, 2, 2.0 / 42},
			{2, -2, 1.0 / 42}, {2, -1, 2.0 / 42}, {2, 0, 4.0 / 42}, {2, 1, 2.0 / 42}, {2, 2, 1.0 / 42},
		}
	case Atkinson:
		return []Weight{
			{0, 1, 1.0 / 8}, {0, 2, 1.0 / 8},
			{1, -1, 1.0 / 8}, {1, 0, 1.0 / 8}, {1, 1, 1.0 / 8},
			{2, 0, 1.0 / 8},
		}
	case Burkes:
		return []Weight{
			{0, 1, 8.0 / 32}, {0, 2, 4.0 / 32},
			{1, -2, 2.0 / 32}, {1, -1, 4.0 / 32}, {1, 0, 8.0 / 32}, {1, 1, 4.0 / 32}, {1, 2, 2.0 / 32},
		}
	case Sierra:
		return []Weight{
			{0, 1, 5.0 / 32}, {0, 2, 3.0 / 32},
			{1, -2, 2.0 / 32}, {1, -1, 4.0 / 32}, {1, 0, 5.0 / 32}, {1, 1, 4.0 / 32}, {1, 2, 2.0 / 32},
			{2, -1, 2.0 / 32}, {2, 0, 3.0 / 32}, {2, 1, 2.0 / 32},
		}
	case TwoRowSierra:
		return []Weight{
			{0, 1, 4.0 / 16}, {0, 2, 3.0 / 16},
			{1, -2, 1.0 / 16}, {1, -1, 2.0 / 16}, {1, 0, 3.0 / 16}, {1, 1, 2.0 / 16}, {1, 2, 1.0 / 16},
		}
	case SierraLite:
		return []Weight{
			{0, 1, 2.0 / 4},
			{1, -1, 1.0 / 4}, {1, 0, 1.0 / 4},
		}
	default:
		return nil
	}
}

// maxOffset is the largest |DX| across every kernel (ERROR_ROW_OFFSET in
// the source), used to size the guarded error-row buffers.
const maxOffset = 2

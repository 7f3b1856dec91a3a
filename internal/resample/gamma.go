package resample

import (
	"math"
	"runtime"
	"sync"

	"github.com/AnyUserName/rasterops/internal/raster"
)

// GammaOpsGray/Vec2/Vec3/Vec4 provide the per-kind linearize/delinearize
// functions used by Scale's gamma-correct path. Grounded on
// image_ops::gamma::gamma_ndim: only Vec4's RGB channels skip the alpha
// component; every other kind applies gamma to all components.
var GammaOpsGray = GammaOps[raster.Gray]{
	ToLinear:   func(p raster.Gray, g float32) raster.Gray { return raster.Gray{V: powClamp(p.V, g)} },
	FromLinear: func(p raster.Gray, ig float32) raster.Gray { return raster.Gray{V: powClamp(p.V, ig)} },
}

var GammaOpsVec2 = GammaOps[raster.Vec2]{
	ToLinear: func(p raster.Vec2, g float32) raster.Vec2 {
		return raster.Vec2{X: powClamp(p.X, g), Y: powClamp(p.Y, g)}
	},
	FromLinear: func(p raster.Vec2, ig float32) raster.Vec2 {
		return raster.Vec2{X: powClamp(p.X, ig), Y: powClamp(p.Y, ig)}
	},
}

var GammaOpsVec3 = GammaOps[raster.Vec3]{
	ToLinear: func(p raster.Vec3, g float32) raster.Vec3 {
		return raster.Vec3{X: powClamp(p.X, g), Y: powClamp(p.Y, g), Z: powClamp(p.Z, g)}
	},
	FromLinear: func(p raster.Vec3, ig float32) raster.Vec3 {
		return raster.Vec3{X: powClamp(p.X, ig), Y: powClamp(p.Y, ig), Z: powClamp(p.Z, ig)}
	},
}

var GammaOpsVec4 = GammaOps[raster.Vec4]{
	ToLinear: func(p raster.Vec4, g float32) raster.Vec4 {
		return raster.Vec4{X: powClamp(p.X, g), Y: powClamp(p.Y, g), Z: powClamp(p.Z, g), W: p.W}
	},
	FromLinear: func(p raster.Vec4, ig float32) raster.Vec4 {
		return raster.Vec4{X: powClamp(p.X, ig), Y: powClamp(p.Y, ig), Z: powClamp(p.Z, ig), W: p.W}
	},
}

func powClamp(x, g float32) float32 {
	if x <= 0 {
		return 0
	}
	v := float32(math.Pow(float64(x), float64(g)))
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blockSize matches gamma.rs's BLOCK_SIZE = 1024 * 8 float32 chunk size
// for its parallel pass.
const blockSize = 1024 * 8

// GammaNDim applies x^gamma to an NDimImage in place, skipping the alpha
// channel for 4-channel images, parallelized across contiguous chunks.
// Grounded on image_ops::gamma::gamma_ndim; the chunk-worker-pool shape
// mirrors internal/pipeline's semaphore-bounded goroutine pattern rather
// than rayon's par_chunks_mut, since no data-parallelism library is
// wired into this module.
func GammaNDim(img raster.NDimImage, gamma float32) {
	data := img.Data
	channels := img.Channels()

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for start := 0; start < len(data); start += blockSize {
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(chunk []float32, base int) {
			defer wg.Done()
			defer func() { <-sem }()

			if channels == 4 {
				// Align the chunk to whole pixels so we never apply
				// gamma to half of an interleaved alpha channel.
				alignedBase := base - base%4
				offset := base - alignedBase
				for i := offset; i+3 < len(chunk)+offset; i += 4 {
					idx := i - offset
					if idx+2 >= len(chunk) {
						break
					}
					chunk[idx] = powClamp(chunk[idx], gamma)
					chunk[idx+1] = powClamp(chunk[idx+1], gamma)
					chunk[idx+2] = powClamp(chunk[idx+2], gamma)
					// chunk[idx+3] is alpha: untouched.
				}
			} else {
				for i := range chunk {
					chunk[i] = powClamp(chunk[i], gamma)
				}
			}
		}(data[start:end], start)
	}
	wg.Wait()
}

package pipeline

import (
	"image"
	"image/color"

	"github.com/AnyUserName/rasterops/internal/raster"
)

// vec4FromImage converts a decoded stdlib image into a float32 RGBA
// raster image, the common currency every core operation in this
// module works over. Grounded on the teacher's own decode-then-process
// shape in processor.go, generalized from uint8 image.Image straight
// into resize/encode to a float32 Image[Vec4] boundary that the core
// operations sit behind.
func vec4FromImage(img image.Image) raster.Image[raster.Vec4] {
	bounds := img.Bounds()
	size := raster.NewSize(bounds.Dx(), bounds.Dy())
	return raster.NewImageFromFunc(size, func(x, y int) raster.Vec4 {
		r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		if a == 0 {
			return raster.Vec4{}
		}
		// RGBA() returns alpha-premultiplied 16-bit components; undo the
		// premultiplication so the core's pixel algebra (which treats
		// Vec4 as straight, not premultiplied, RGBA) sees true color.
		af := float32(a) / 65535
		return raster.Vec4{
			X: float32(r) / float32(a),
			Y: float32(g) / float32(a),
			Z: float32(b) / float32(a),
			W: af,
		}
	})
}

// imageFromVec4 converts a float32 RGBA raster image back into a
// stdlib image.NRGBA for the encoder registry to consume.
func imageFromVec4(img raster.Image[raster.Vec4]) *image.NRGBA {
	w, h := img.Width(), img.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := img.At(x, y).Clip(0, 1)
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(p.X*255 + 0.5),
				G: uint8(p.Y*255 + 0.5),
				B: uint8(p.Z*255 + 0.5),
				A: uint8(p.W*255 + 0.5),
			})
		}
	}
	return out
}

// grayFromAlpha extracts img's alpha channel as a single-channel image,
// the shape internal/esdt operates on.
func grayFromAlpha(img raster.Image[raster.Vec4]) raster.Image[raster.Gray] {
	return raster.NewImageFromFunc(img.Size(), func(x, y int) raster.Gray {
		return raster.Gray{V: img.At(x, y).W}
	})
}

// vec4FromAlphaField writes an esdt-produced single-channel field back
// into the alpha channel of a copy of img, leaving color untouched.
func vec4FromAlphaField(img raster.Image[raster.Vec4], field raster.Image[raster.Gray]) raster.Image[raster.Vec4] {
	return raster.NewImageFromFunc(img.Size(), func(x, y int) raster.Vec4 {
		p := img.At(x, y)
		p.W = field.At(x, y).V
		return p
	})
}

// hasAlpha reports whether any pixel in img is less than fully opaque.
func hasAlpha(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// meanAndVariance computes the per-channel mean and (population)
// variance of an NDimImage's data, one pass over the float32 buffer.
func meanAndVariance(img raster.NDimImage) (mean, variance []float64) {
	channels := img.Channels()
	mean = make([]float64, channels)
	variance = make([]float64, channels)

	pixels := img.Width() * img.Height()
	if pixels == 0 {
		return mean, variance
	}

	for i, v := range img.Data {
		mean[i%channels] += float64(v)
	}
	for c := range mean {
		mean[c] /= float64(pixels)
	}

	for i, v := range img.Data {
		d := float64(v) - mean[i%channels]
		variance[i%channels] += d * d
	}
	for c := range variance {
		variance[c] /= float64(pixels)
	}

	return mean, variance
}

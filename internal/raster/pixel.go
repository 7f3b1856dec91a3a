// Package raster defines the pixel kinds and image containers shared by
// every algorithm in this module: scalar, 2-, 3- and 4-component pixels
// over float32, plus the typed and untyped image containers that hold
// them. Grounded on image_core::pixel and image_core::image/ndim from
// the chaiNNer-rs source this module's algorithms are ported from.
package raster

import "github.com/AnyUserName/rasterops/internal/rerr"

// Pixel is satisfied by every concrete pixel kind (Gray, Vec2, Vec3,
// Vec4). It is the curiously-recurring generic pattern: Self is always
// the concrete type implementing the interface, which lets Image[P] and
// every per-pixel algorithm be written once and monomorphized by the Go
// compiler per pixel kind — the Go realization of the channel-count
// dispatch named in the data model.
type Pixel[Self any] interface {
	Components() int
	Add(Self) Self
	Sub(Self) Self
	Scale(float32) Self
	Clip(min, max float32) Self
	Flatten() []float32
}

// Gray is the 1-component pixel kind.
type Gray struct{ V float32 }

func (p Gray) Components() int           { return 1 }
func (p Gray) Add(o Gray) Gray           { return Gray{p.V + o.V} }
func (p Gray) Sub(o Gray) Gray           { return Gray{p.V - o.V} }
func (p Gray) Scale(s float32) Gray      { return Gray{p.V * s} }
func (p Gray) Flatten() []float32        { return []float32{p.V} }
func (p Gray) Clip(min, max float32) Gray {
	return Gray{clipFloat(p.V, min, max)}
}

// Vec2 is the 2-component pixel kind.
type Vec2 struct{ X, Y float32 }

func (p Vec2) Components() int      { return 2 }
func (p Vec2) Add(o Vec2) Vec2      { return Vec2{p.X + o.X, p.Y + o.Y} }
func (p Vec2) Sub(o Vec2) Vec2      { return Vec2{p.X - o.X, p.Y - o.Y} }
func (p Vec2) Scale(s float32) Vec2 { return Vec2{p.X * s, p.Y * s} }
func (p Vec2) Flatten() []float32   { return []float32{p.X, p.Y} }
func (p Vec2) Clip(min, max float32) Vec2 {
	return Vec2{clipFloat(p.X, min, max), clipFloat(p.Y, min, max)}
}

// Vec3 is the 3-component pixel kind (RGB).
type Vec3 struct{ X, Y, Z float32 }

func (p Vec3) Components() int      { return 3 }
func (p Vec3) Add(o Vec3) Vec3      { return Vec3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Vec3) Sub(o Vec3) Vec3      { return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Vec3) Scale(s float32) Vec3 { return Vec3{p.X * s, p.Y * s, p.Z * s} }
func (p Vec3) Flatten() []float32   { return []float32{p.X, p.Y, p.Z} }
func (p Vec3) Clip(min, max float32) Vec3 {
	return Vec3{clipFloat(p.X, min, max), clipFloat(p.Y, min, max), clipFloat(p.Z, min, max)}
}

// Vec4 is the 4-component pixel kind (RGBA).
type Vec4 struct{ X, Y, Z, W float32 }

func (p Vec4) Components() int { return 4 }
func (p Vec4) Add(o Vec4) Vec4 { return Vec4{p.X + o.X, p.Y + o.Y, p.Z + o.Z, p.W + o.W} }
func (p Vec4) Sub(o Vec4) Vec4 { return Vec4{p.X - o.X, p.Y - o.Y, p.Z - o.Z, p.W - o.W} }
func (p Vec4) Scale(s float32) Vec4 {
	return Vec4{p.X * s, p.Y * s, p.Z * s, p.W * s}
}
func (p Vec4) Flatten() []float32 { return []float32{p.X, p.Y, p.Z, p.W} }
func (p Vec4) Clip(min, max float32) Vec4 {
	return Vec4{
		clipFloat(p.X, min, max), clipFloat(p.Y, min, max),
		clipFloat(p.Z, min, max), clipFloat(p.W, min, max),
	}
}

// clipFloat saturates x to [min, max]. NaN propagates to the upper bound
// — a deliberate, documented rule (not Go's native math.Max/Min NaN
// behavior) so that callers can assert on it.
func clipFloat(x, min, max float32) float32 {
	if x != x { // NaN
		return max
	}
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// FlattenGray, FlattenVec2, ... flatten a slice of pixels into a single
// row-major float32 slice, preserving order. For these struct layouts
// the flatten is always a deterministic per-pixel copy (Go gives no
// portable guarantee of struct-of-float32 layout matching a same-sized
// slice without a copy, unlike the zero-copy transmute the Rust source
// attempts for Vec4).
func FlattenGray(ps []Gray) []float32 {
	out := make([]float32, len(ps))
	for i, p := range ps {
		out[i] = p.V
	}
	return out
}

func FlattenVec2(ps []Vec2) []float32 {
	out := make([]float32, 0, len(ps)*2)
	for _, p := range ps {
		out = append(out, p.X, p.Y)
	}
	return out
}

func FlattenVec3(ps []Vec3) []float32 {
	out := make([]float32, 0, len(ps)*3)
	for _, p := range ps {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

func FlattenVec4(ps []Vec4) []float32 {
	out := make([]float32, 0, len(ps)*4)
	for _, p := range ps {
		out = append(out, p.X, p.Y, p.Z, p.W)
	}
	return out
}

// replicate1 reads a single scalar value out of a 1-channel source and
// is shared by every FromFlat below — the replication rule from the
// data model: a 1-channel source replicates across all components of
// the destination kind.

// GrayFromFlat builds Gray pixels from flat data. Only exact 1-channel
// data is accepted; there is nothing to replicate into.
func GrayFromFlat(flat []float32, channels int) ([]Gray, error) {
	if channels != 1 {
		return nil, &rerr.UnsupportedChannels{Supported: []int{1}, Actual: channels}
	}
	out := make([]Gray, len(flat))
	for i, v := range flat {
		out[i] = Gray{v}
	}
	return out, nil
}

// Vec2FromFlat builds Vec2 pixels, accepting 1-channel (replicated) or
// exact 2-channel data.
func Vec2FromFlat(flat []float32, channels int) ([]Vec2, error) {
	switch channels {
	case 1:
		out := make([]Vec2, len(flat))
		for i, v := range flat {
			out[i] = Vec2{v, v}
		}
		return out, nil
	case 2:
		n := len(flat) / 2
		out := make([]Vec2, n)
		for i := 0; i < n; i++ {
			out[i] = Vec2{flat[i*2], flat[i*2+1]}
		}
		return out, nil
	default:
		return nil, &rerr.UnsupportedChannels{Supported: []int{1, 2}, Actual: channels}
	}
}

// Vec3FromFlat builds Vec3 pixels, accepting 1-channel (replicated) or
// exact 3-channel data.
func Vec3FromFlat(flat []float32, channels int) ([]Vec3, error) {
	switch channels {
	case 1:
		out := make([]Vec3, len(flat))
		for i, v := range flat {
			out[i] = Vec3{v, v, v}
		}
		return out, nil
	case 3:
		n := len(flat) / 3
		out := make([]Vec3, n)
		for i := 0; i < n; i++ {
			out[i] = Vec3{flat[i*3], flat[i*3+1], flat[i*3+2]}
		}
		return out, nil
	default:
		return nil, &rerr.UnsupportedChannels{Supported: []int{1, 3}, Actual: channels}
	}
}

// Vec4FromFlat builds Vec4 pixels, accepting 1-channel (replicated with
// alpha defaulting to 1.0), 3-channel (RGB with alpha defaulting to 1.0),
// or exact 4-channel data.
func Vec4FromFlat(flat []float32, channels int) ([]Vec4, error) {
	switch channels {
	case 1:
		out := make([]Vec4, len(flat))
		for i, v := range flat {
			out[i] = Vec4{v, v, v, 1}
		}
		return out, nil
	case 3:
		n := len(flat) / 3
		out := make([]Vec4, n)
		for i := 0; i < n; i++ {
			out[i] = Vec4{flat[i*3], flat[i*3+1], flat[i*3+2], 1}
		}
		return out, nil
	case 4:
		n := len(flat) / 4
		out := make([]Vec4, n)
		for i := 0; i < n; i++ {
			out[i] = Vec4{flat[i*4], flat[i*4+1], flat[i*4+2], flat[i*4+3]}
		}
		return out, nil
	default:
		return nil, &rerr.UnsupportedChannels{Supported: []int{1, 3, 4}, Actual: channels}
	}
}

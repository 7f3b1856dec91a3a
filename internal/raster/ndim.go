package raster

import "github.com/AnyUserName/rasterops/internal/rerr"

// NDimImage is the untyped, channel-generic image container: row-major
// float32 data with channels interleaved per pixel. Grounded on
// image_core::ndim::NDimImage.
type NDimImage struct {
	Data  []float32
	Shape Shape
}

// NewNDimImage builds an NDimImage from already-sized data.
func NewNDimImage(shape Shape, data []float32) (NDimImage, error) {
	if len(data) != shape.Len() {
		return NDimImage{}, rerr.NewInternal("ndim image data length %d does not match shape %+v", len(data), shape)
	}
	return NDimImage{Data: data, Shape: shape}, nil
}

// ZerosNDimImage allocates a zero-filled NDimImage of the given shape.
func ZerosNDimImage(shape Shape) NDimImage {
	return NDimImage{Data: make([]float32, shape.Len()), Shape: shape}
}

func (n NDimImage) Channels() int { return n.Shape.Channels }
func (n NDimImage) Width() int    { return n.Shape.Width }
func (n NDimImage) Height() int   { return n.Shape.Height }

// At returns the channels at pixel (x, y) as a freshly allocated slice.
func (n NDimImage) At(x, y int) []float32 {
	c := n.Shape.Channels
	i := (y*n.Shape.Width + x) * c
	out := make([]float32, c)
	copy(out, n.Data[i:i+c])
	return out
}

// Set overwrites the channels at pixel (x, y).
func (n NDimImage) Set(x, y int, v []float32) {
	c := n.Shape.Channels
	i := (y*n.Shape.Width + x) * c
	copy(n.Data[i:i+c], v)
}

// FromImage converts a typed Image[P] into its NDimImage form by
// flattening every pixel, mirroring the `From<Image<P>> for NDimImage`
// conversions in the Rust source.
func NDimFromGray(img Image[Gray]) NDimImage {
	return NDimImage{Data: FlattenGray(img.Data), Shape: ShapeFromSize(img.Size(), 1)}
}
func NDimFromVec2(img Image[Vec2]) NDimImage {
	return NDimImage{Data: FlattenVec2(img.Data), Shape: ShapeFromSize(img.Size(), 2)}
}
func NDimFromVec3(img Image[Vec3]) NDimImage {
	return NDimImage{Data: FlattenVec3(img.Data), Shape: ShapeFromSize(img.Size(), 3)}
}
func NDimFromVec4(img Image[Vec4]) NDimImage {
	return NDimImage{Data: FlattenVec4(img.Data), Shape: ShapeFromSize(img.Size(), 4)}
}

// ToImage* convert an NDimImage back to a typed image, applying the same
// replication rules as FromFlat.
func (n NDimImage) ToGray() (Image[Gray], error) {
	px, err := GrayFromFlat(n.Data, n.Shape.Channels)
	if err != nil {
		return Image[Gray]{}, err
	}
	return NewImage(n.Shape.Size(), px), nil
}
func (n NDimImage) ToVec2() (Image[Vec2], error) {
	px, err := Vec2FromFlat(n.Data, n.Shape.Channels)
	if err != nil {
		return Image[Vec2]{}, err
	}
	return NewImage(n.Shape.Size(), px), nil
}
func (n NDimImage) ToVec3() (Image[Vec3], error) {
	px, err := Vec3FromFlat(n.Data, n.Shape.Channels)
	if err != nil {
		return Image[Vec3]{}, err
	}
	return NewImage(n.Shape.Size(), px), nil
}
func (n NDimImage) ToVec4() (Image[Vec4], error) {
	px, err := Vec4FromFlat(n.Data, n.Shape.Channels)
	if err != nil {
		return Image[Vec4]{}, err
	}
	return NewImage(n.Shape.Size(), px), nil
}

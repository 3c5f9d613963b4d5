// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vsggis

import (
	"math"

	"github.com/airbusgeo/vsggis/data"
)

type image2DOpts struct {
	zeroAlpha bool
}

// Image2DOption is an option that can be passed to CreateImage2D()
//
// Available Image2DOptions are:
//
// • ZeroAlphaDefault
type Image2DOption interface {
	setImage2DOpt(io *image2DOpts)
}

type zeroAlphaOpt struct{}

// ZeroAlphaDefault makes CreateImage2D derive the fourth channel of the
// fill value from 0 instead of the alpha component of def, reproducing
// the fill of earlier releases whose four component images ignored the
// supplied alpha.
func ZeroAlphaDefault() interface {
	Image2DOption
} {
	return zeroAlphaOpt{}
}

func (zeroAlphaOpt) setImage2DOpt(io *image2DOpts) {
	io.zeroAlpha = true
}

// saturatingDefault converts one channel of a default value to the
// element type. Integer types saturate: negative values clamp to the
// type's minimum, positive values to its maximum and only zero stays
// zero. Floating point types keep the value.
func saturatingDefault[T data.Scalar](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		if v > 0 {
			*p = math.MaxUint8
		}
	case *uint16:
		if v > 0 {
			*p = math.MaxUint16
		}
	case *uint32:
		if v > 0 {
			*p = math.MaxUint32
		}
	case *int16:
		if v < 0 {
			*p = math.MinInt16
		} else if v > 0 {
			*p = math.MaxInt16
		}
	case *int32:
		if v < 0 {
			*p = math.MinInt32
		} else if v > 0 {
			*p = math.MaxInt32
		}
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}

func scalarImage[T data.Scalar](w, h int, format data.Format, def [4]float64) data.Image {
	return data.NewArray2D(w, h, saturatingDefault[T](def[0]), format)
}

func vec2Image[T data.Scalar](w, h int, format data.Format, def [4]float64) data.Image {
	fill := data.Vec2[T]{
		X: saturatingDefault[T](def[0]),
		Y: saturatingDefault[T](def[1]),
	}
	return data.NewArray2D(w, h, fill, format)
}

func vec3Image[T data.Scalar](w, h int, format data.Format, def [4]float64) data.Image {
	fill := data.Vec3[T]{
		X: saturatingDefault[T](def[0]),
		Y: saturatingDefault[T](def[1]),
		Z: saturatingDefault[T](def[2]),
	}
	return data.NewArray2D(w, h, fill, format)
}

func vec4Image[T data.Scalar](w, h int, format data.Format, def [4]float64) data.Image {
	fill := data.Vec4[T]{
		X: saturatingDefault[T](def[0]),
		Y: saturatingDefault[T](def[1]),
		Z: saturatingDefault[T](def[2]),
		W: saturatingDefault[T](def[3]),
	}
	return data.NewArray2D(w, h, fill, format)
}

type imageKey struct {
	dtype      DataType
	components int
}

type imageFactory struct {
	format data.Format
	create func(w, h int, format data.Format, def [4]float64) data.Image
}

var imageFactories = map[imageKey]imageFactory{
	{Byte, 1}:    {data.FormatR8UNorm, scalarImage[uint8]},
	{UInt16, 1}:  {data.FormatR16UNorm, scalarImage[uint16]},
	{Int16, 1}:   {data.FormatR16SNorm, scalarImage[int16]},
	{UInt32, 1}:  {data.FormatR32UInt, scalarImage[uint32]},
	{Int32, 1}:   {data.FormatR32SInt, scalarImage[int32]},
	{Float32, 1}: {data.FormatR32SFloat, scalarImage[float32]},
	{Float64, 1}: {data.FormatR64SFloat, scalarImage[float64]},

	{Byte, 2}:    {data.FormatR8G8UNorm, vec2Image[uint8]},
	{UInt16, 2}:  {data.FormatR16G16UNorm, vec2Image[uint16]},
	{Int16, 2}:   {data.FormatR16G16SNorm, vec2Image[int16]},
	{UInt32, 2}:  {data.FormatR32G32UInt, vec2Image[uint32]},
	{Int32, 2}:   {data.FormatR32G32SInt, vec2Image[int32]},
	{Float32, 2}: {data.FormatR32G32SFloat, vec2Image[float32]},
	{Float64, 2}: {data.FormatR64G64SFloat, vec2Image[float64]},

	{Byte, 3}:    {data.FormatR8G8B8UNorm, vec3Image[uint8]},
	{UInt16, 3}:  {data.FormatR16G16B16UNorm, vec3Image[uint16]},
	{Int16, 3}:   {data.FormatR16G16B16SNorm, vec3Image[int16]},
	{UInt32, 3}:  {data.FormatR32G32B32UInt, vec3Image[uint32]},
	{Int32, 3}:   {data.FormatR32G32B32SInt, vec3Image[int32]},
	{Float32, 3}: {data.FormatR32G32B32SFloat, vec3Image[float32]},
	{Float64, 3}: {data.FormatR64G64B64SFloat, vec3Image[float64]},

	{Byte, 4}:    {data.FormatR8G8B8A8UNorm, vec4Image[uint8]},
	{UInt16, 4}:  {data.FormatR16G16B16A16UNorm, vec4Image[uint16]},
	{Int16, 4}:   {data.FormatR16G16B16A16SNorm, vec4Image[int16]},
	{UInt32, 4}:  {data.FormatR32G32B32A32UInt, vec4Image[uint32]},
	{Int32, 4}:   {data.FormatR32G32B32A32SInt, vec4Image[int32]},
	{Float32, 4}: {data.FormatR32G32B32A32SFloat, vec4Image[float32]},
	{Float64, 4}: {data.FormatR64G64B64A64SFloat, vec4Image[float64]},
}

// ImageFormat returns the image format produced by CreateImage2D for the
// given element type and component count. ok is false when the
// combination is not supported.
func ImageFormat(dtype DataType, components int) (data.Format, bool) {
	f, ok := imageFactories[imageKey{dtype, components}]
	if !ok {
		return data.FormatUndefined, false
	}
	return f.format, true
}

// CreateImage2D allocates a width x height image with components channels
// of element type dtype, every element filled with the default derived
// from def. One channel of def is consumed per component, integer
// channels saturating to the element type's range. Unsupported
// combinations of dtype and components return nil. Width and height are
// not validated.
func CreateImage2D(width, height, components int, dtype DataType, def [4]float64, opts ...Image2DOption) data.Image {
	io := image2DOpts{}
	for _, o := range opts {
		o.setImage2DOpt(&io)
	}
	if io.zeroAlpha {
		def[3] = 0
	}

	f, ok := imageFactories[imageKey{dtype, components}]
	if !ok {
		return nil
	}
	return f.create(width, height, f.format, def)
}

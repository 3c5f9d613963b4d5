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

package data

import "unsafe"

// Scalar lists the element types a raster channel can hold.
type Scalar interface {
	uint8 | uint16 | int16 | uint32 | int32 | float32 | float64
}

// Vec2 is a two channel image element.
type Vec2[T Scalar] struct {
	X, Y T
}

// Vec3 is a three channel image element.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vec4 is a four channel image element.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// Image is the read/write surface shared by all Array2D instantiations:
// element layout, raw bytes for upload paths and per object string
// metadata.
type Image interface {
	Width() int
	Height() int
	Format() Format
	Bytes() []byte
	SetValue(key, value string)
	Value(key string) (string, bool)
}

// Array2D is a dense row major 2D array of image elements tagged with the
// format describing their layout. T is a Scalar or a Vec2/Vec3/Vec4 of
// one.
type Array2D[T any] struct {
	width, height int
	format        Format
	values        []T
	meta          map[string]string
}

// NewArray2D allocates a width x height array with every element set to
// fill.
func NewArray2D[T any](width, height int, fill T, format Format) *Array2D[T] {
	values := make([]T, width*height)
	for i := range values {
		values[i] = fill
	}
	return &Array2D[T]{
		width:  width,
		height: height,
		format: format,
		values: values,
	}
}

// Width returns the array's width in elements.
func (a *Array2D[T]) Width() int {
	return a.width
}

// Height returns the array's height in elements.
func (a *Array2D[T]) Height() int {
	return a.height
}

// Format returns the element layout of the array.
func (a *Array2D[T]) Format() Format {
	return a.format
}

// At returns the element at column x of row y.
func (a *Array2D[T]) At(x, y int) T {
	return a.values[y*a.width+x]
}

// Set overwrites the element at column x of row y.
func (a *Array2D[T]) Set(x, y int, v T) {
	a.values[y*a.width+x] = v
}

// Values returns the array's backing storage in row major order. Writes
// through the returned slice modify the array.
func (a *Array2D[T]) Values() []T {
	return a.values
}

// Bytes returns the backing storage reinterpreted as raw bytes. The slice
// aliases the array's elements.
func (a *Array2D[T]) Bytes() []byte {
	if len(a.values) == 0 {
		return nil
	}
	n := len(a.values) * int(unsafe.Sizeof(a.values[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.values[0])), n)
}

// SetValue attaches a string metadata value to the array under key,
// replacing any previous value.
func (a *Array2D[T]) SetValue(key, value string) {
	if a.meta == nil {
		a.meta = map[string]string{}
	}
	a.meta[key] = value
}

// Value returns the metadata value attached under key.
func (a *Array2D[T]) Value(key string) (string, bool) {
	v, ok := a.meta[key]
	return v, ok
}

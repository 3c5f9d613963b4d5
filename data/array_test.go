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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Image = &Array2D[uint8]{}
	_ Image = &Array2D[Vec4[float64]]{}
)

func TestArray2D(t *testing.T) {
	a := NewArray2D(3, 2, uint8(7), FormatR8UNorm)
	assert.Equal(t, 3, a.Width())
	assert.Equal(t, 2, a.Height())
	assert.Equal(t, FormatR8UNorm, a.Format())

	require.Len(t, a.Values(), 6)
	for _, v := range a.Values() {
		assert.Equal(t, uint8(7), v)
	}

	a.Set(2, 1, 9)
	assert.Equal(t, uint8(9), a.At(2, 1))
	assert.Equal(t, uint8(7), a.At(0, 0))
	// the backing storage is row major
	assert.Equal(t, uint8(9), a.Values()[5])
}

func TestArray2DVec(t *testing.T) {
	fill := Vec3[float32]{X: 1, Y: 2, Z: 3}
	a := NewArray2D(2, 2, fill, FormatR32G32B32SFloat)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, fill, a.At(x, y))
		}
	}
	a.Set(1, 0, Vec3[float32]{X: 4, Y: 5, Z: 6})
	assert.Equal(t, float32(5), a.At(1, 0).Y)
}

func TestArray2DBytes(t *testing.T) {
	a := NewArray2D(4, 3, uint8(0xAB), FormatR8UNorm)
	b := a.Bytes()
	require.Len(t, b, FormatR8UNorm.ImageBytes(4, 3))
	for _, v := range b {
		assert.Equal(t, byte(0xAB), v)
	}
	// the byte view aliases the elements
	b[0] = 0xCD
	assert.Equal(t, uint8(0xCD), a.At(0, 0))

	v3 := NewArray2D(2, 2, Vec3[float64]{}, FormatR64G64B64SFloat)
	assert.Len(t, v3.Bytes(), FormatR64G64B64SFloat.ImageBytes(2, 2))

	empty := NewArray2D(0, 0, uint8(0), FormatR8UNorm)
	assert.Nil(t, empty.Bytes())
}

func TestArray2DMetadata(t *testing.T) {
	a := NewArray2D(1, 1, uint8(0), FormatR8UNorm)

	_, ok := a.Value("missing")
	assert.False(t, ok)

	a.SetValue("AREA_OR_POINT", "Area")
	v, ok := a.Value("AREA_OR_POINT")
	assert.True(t, ok)
	assert.Equal(t, "Area", v)

	a.SetValue("AREA_OR_POINT", "Point")
	v, _ = a.Value("AREA_OR_POINT")
	assert.Equal(t, "Point", v)
}

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
)

func TestFormatInfo(t *testing.T) {
	assert.Equal(t, FormatInfo{Channels: 1, BitsPerChannel: 8, Encoding: UNorm}, FormatR8UNorm.Info())
	assert.Equal(t, FormatInfo{Channels: 4, BitsPerChannel: 16, Encoding: SNorm}, FormatR16G16B16A16SNorm.Info())
	assert.Equal(t, FormatInfo{Channels: 3, BitsPerChannel: 32, Encoding: UInt}, FormatR32G32B32UInt.Info())
	assert.Equal(t, FormatInfo{Channels: 2, BitsPerChannel: 64, Encoding: SFloat}, FormatR64G64SFloat.Info())
	assert.Equal(t, FormatInfo{}, FormatUndefined.Info())
	assert.Equal(t, FormatInfo{}, Format(9999).Info())

	for f := FormatUndefined + 1; f < formatCount; f++ {
		info := f.Info()
		assert.True(t, f.Valid())
		assert.Contains(t, []int{1, 2, 3, 4}, info.Channels, f.String())
		assert.Contains(t, []int{8, 16, 32, 64}, info.BitsPerChannel, f.String())
		assert.NotEqual(t, EncodingUndefined, info.Encoding, f.String())
		assert.Equal(t, info.Channels*info.BitsPerChannel/8, f.BytesPerElement())
	}
	assert.False(t, FormatUndefined.Valid())
	assert.False(t, formatCount.Valid())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, 1, FormatR8UNorm.BytesPerElement())
	assert.Equal(t, 3, FormatR8G8B8UNorm.BytesPerElement())
	assert.Equal(t, 8, FormatR16G16B16A16UNorm.BytesPerElement())
	assert.Equal(t, 32, FormatR64G64B64A64SFloat.BytesPerElement())
	assert.Equal(t, 0, FormatUndefined.BytesPerElement())

	assert.Equal(t, 30, FormatR8G8B8UNorm.RowBytes(10))
	assert.Equal(t, 300, FormatR8G8B8UNorm.ImageBytes(10, 10))
	assert.Equal(t, 0, FormatR32SFloat.ImageBytes(0, 10))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "R8UNorm", FormatR8UNorm.String())
	assert.Equal(t, "R8G8B8A8UNorm", FormatR8G8B8A8UNorm.String())
	assert.Equal(t, "R16G16B16A16SNorm", FormatR16G16B16A16SNorm.String())
	assert.Equal(t, "R32G32UInt", FormatR32G32UInt.String())
	assert.Equal(t, "R32SInt", FormatR32SInt.String())
	assert.Equal(t, "R64G64B64A64SFloat", FormatR64G64B64A64SFloat.String())
	assert.Equal(t, "Undefined", FormatUndefined.String())
	assert.Equal(t, "Undefined", Format(9999).String())
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "UNorm", UNorm.String())
	assert.Equal(t, "SNorm", SNorm.String())
	assert.Equal(t, "UInt", UInt.String())
	assert.Equal(t, "SInt", SInt.String())
	assert.Equal(t, "SFloat", SFloat.String())
	assert.Equal(t, "Undefined", EncodingUndefined.String())
}

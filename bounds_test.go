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
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelToGeo(t *testing.T) {
	gt := [6]float64{100, 10, 0, 200, 0, -10}

	x, y := PixelToGeo(gt, 0, 0)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)

	x, y = PixelToGeo(gt, 5, 4)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 160.0, y)

	// rotation terms participate
	x, y = PixelToGeo([6]float64{0, 1, 2, 0, 3, 4}, 1, 1)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 7.0, y)
}

func TestBounds(t *testing.T) {
	di := DatasetInfo{
		Width:        5,
		Height:       4,
		Transform:    [6]float64{100, 10, 0, 200, 0, -10},
		HasTransform: true,
	}

	b, err := Bounds(di)
	require.NoError(t, err)
	// the negative y scale flips min and max
	assert.Equal(t, orb.Bound{Min: orb.Point{100, 160}, Max: orb.Point{150, 200}}, b)

	_, err = Bounds(DatasetInfo{Width: 5, Height: 4})
	assert.ErrorIs(t, err, ErrNoGeoTransform)
}

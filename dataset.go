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

import "errors"

// ErrNoGeoTransform is returned by Dataset implementations whose dataset
// has no geotransform.
var ErrNoGeoTransform = errors.New("dataset has no geotransform")

// Dataset is the read-only view of a georeferenced raster dataset needed
// to compare two of them and to derive images. Package godalds implements
// it on top of github.com/airbusgeo/godal; DatasetInfo is a plain value
// implementation.
type Dataset interface {
	// Projection returns the dataset's spatial reference in WKT. ok is
	// false when the dataset carries no spatial reference.
	Projection() (wkt string, ok bool)
	// RasterSize returns the dataset's dimensions in pixels.
	RasterSize() (width, height int)
	// GeoTransform returns the affine transformation from pixel space to
	// georeferenced space, or an error when the dataset has none.
	GeoTransform() ([6]float64, error)
}

// MetadataProvider is implemented by datasets that expose the metadata
// dictionary of their default domain.
type MetadataProvider interface {
	Metadata() map[string]string
}

// DatasetInfo holds the georeferencing of a dataset as plain comparable
// values and implements Dataset. An empty ProjWKT means the dataset has
// no spatial reference.
type DatasetInfo struct {
	ProjWKT       string
	Width, Height int
	Transform     [6]float64
	HasTransform  bool
}

// Projection implements Dataset.
func (di DatasetInfo) Projection() (string, bool) {
	return di.ProjWKT, di.ProjWKT != ""
}

// RasterSize implements Dataset.
func (di DatasetInfo) RasterSize() (int, int) {
	return di.Width, di.Height
}

// GeoTransform implements Dataset. It returns ErrNoGeoTransform when
// HasTransform is unset.
func (di DatasetInfo) GeoTransform() ([6]float64, error) {
	if !di.HasTransform {
		return [6]float64{}, ErrNoGeoTransform
	}
	return di.Transform, nil
}

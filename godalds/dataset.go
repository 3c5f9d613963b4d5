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

package godalds

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/airbusgeo/vsggis"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger routes the package's logs to l. The default logger discards
// everything.
func SetLogger(l *zap.Logger) {
	logger = l
}

var registerOnce sync.Once

// Dataset adapts a godal dataset to the vsggis.Dataset interface.
type Dataset struct {
	ds *godal.Dataset
}

// Wrap adapts ds. The caller keeps ownership of ds: closing it
// invalidates the returned Dataset.
func Wrap(ds *godal.Dataset) *Dataset {
	return &Dataset{ds: ds}
}

// Open opens the raster dataset at name. GDAL's drivers are registered on
// first use.
func Open(name string) (*Dataset, error) {
	registerOnce.Do(godal.RegisterAll)
	ds, err := godal.Open(name, godal.RasterOnly())
	if err != nil {
		logger.Error("open dataset", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	st := ds.Structure()
	logger.Info("opened dataset", zap.String("name", name),
		zap.Int("width", st.SizeX), zap.Int("height", st.SizeY),
		zap.Int("bands", st.NBands), zap.Stringer("datatype", st.DataType))
	return &Dataset{ds: ds}, nil
}

// Close releases the underlying dataset.
func (d *Dataset) Close() error {
	return d.ds.Close()
}

// Projection implements vsggis.Dataset. ok is false when the dataset has
// no spatial reference.
func (d *Dataset) Projection() (string, bool) {
	wkt := d.ds.Projection()
	return wkt, wkt != ""
}

// RasterSize implements vsggis.Dataset.
func (d *Dataset) RasterSize() (int, int) {
	st := d.ds.Structure()
	return st.SizeX, st.SizeY
}

// GeoTransform implements vsggis.Dataset.
func (d *Dataset) GeoTransform() ([6]float64, error) {
	return d.ds.GeoTransform()
}

// Metadata implements vsggis.MetadataProvider with the dataset's default
// metadata domain.
func (d *Dataset) Metadata() map[string]string {
	return d.ds.Metadatas()
}

// DataType returns the dataset's pixel data type, vsggis.Unknown for
// rasters whose element type has no vsggis equivalent.
func (d *Dataset) DataType() vsggis.DataType {
	return DataTypeFrom(d.ds.Structure().DataType)
}

// Info snapshots the dataset's georeferencing into a plain value that can
// outlive the dataset handle.
func (d *Dataset) Info() vsggis.DatasetInfo {
	st := d.ds.Structure()
	info := vsggis.DatasetInfo{
		ProjWKT: d.ds.Projection(),
		Width:   st.SizeX,
		Height:  st.SizeY,
	}
	if gt, err := d.ds.GeoTransform(); err == nil {
		info.Transform = gt
		info.HasTransform = true
	}
	return info
}

// DataTypeFrom converts a godal pixel data type to the equivalent
// vsggis.DataType. Types without an equivalent, such as the complex
// types, map to vsggis.Unknown.
func DataTypeFrom(dt godal.DataType) vsggis.DataType {
	switch dt {
	case godal.Byte:
		return vsggis.Byte
	case godal.UInt16:
		return vsggis.UInt16
	case godal.Int16:
		return vsggis.Int16
	case godal.UInt32:
		return vsggis.UInt32
	case godal.Int32:
		return vsggis.Int32
	case godal.Float32:
		return vsggis.Float32
	case godal.Float64:
		return vsggis.Float64
	default:
		return vsggis.Unknown
	}
}

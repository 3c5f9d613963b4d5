package vsggis

import (
	"fmt"

	"github.com/paulmach/orb"
)

// PixelToGeo applies the geotransform gt to the pixel coordinates px,py
// and returns the corresponding georeferenced coordinates.
func PixelToGeo(gt [6]float64, px, py float64) (float64, float64) {
	return gt[0] + px*gt[1] + py*gt[2],
		gt[3] + px*gt[4] + py*gt[5]
}

// Bounds returns the georeferenced bounding box covered by the dataset's
// pixel grid, computed from its geotransform and raster size. Datasets
// without a geotransform return an error.
func Bounds(ds Dataset) (orb.Bound, error) {
	gt, err := ds.GeoTransform()
	if err != nil {
		return orb.Bound{}, fmt.Errorf("get geotransform: %w", err)
	}
	width, height := ds.RasterSize()
	x0, y0 := PixelToGeo(gt, 0, 0)
	x1, y1 := PixelToGeo(gt, float64(width), float64(height))
	if x0 > x1 {
		x1, x0 = x0, x1
	}
	if y0 > y1 {
		y1, y0 = y0, y1
	}
	return orb.Bound{Min: orb.Point{x0, y0}, Max: orb.Point{x1, y1}}, nil
}

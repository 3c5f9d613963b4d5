package vsggis

import "reflect"

type compatibilityOpts struct {
	firstProjectionOnly bool
}

// CompatibilityOption is an option that can be passed to
// CompatibleProjections() and CompatibleProjectionsTransformAndSizes()
//
// Available CompatibilityOptions are:
//
// • FirstProjectionOnly
type CompatibilityOption interface {
	setCompatibilityOpt(co *compatibilityOpts)
}

type firstProjectionOnlyOpt struct{}

// FirstProjectionOnly restores the projection comparison of earlier
// releases, which read both descriptors from the first dataset. The
// projection stage then always succeeds, so only raster sizes and
// geotransforms can make two datasets incompatible.
func FirstProjectionOnly() interface {
	CompatibilityOption
} {
	return firstProjectionOnlyOpt{}
}

func (firstProjectionOnlyOpt) setCompatibilityOpt(co *compatibilityOpts) {
	co.firstProjectionOnly = true
}

// CompatibleProjections reports whether two datasets have the same spatial
// reference. A dataset is always compatible with itself; two datasets
// without a spatial reference are compatible, a dataset with one is
// incompatible with a dataset without.
func CompatibleProjections(a, b Dataset, opts ...CompatibilityOption) bool {
	co := compatibilityOpts{}
	for _, o := range opts {
		o.setCompatibilityOpt(&co)
	}
	return compatibleProjections(a, b, &co)
}

// sameDataset reports whether a and b hold the same dataset value.
// Interface equality panics on uncomparable dynamic types, so those never
// match here and are decided by the descriptor checks instead.
func sameDataset(a, b Dataset) bool {
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if t != nil && !t.Comparable() {
		return false
	}
	return a == b
}

func compatibleProjections(a, b Dataset, co *compatibilityOpts) bool {
	if sameDataset(a, b) {
		return true
	}

	awkt, aok := a.Projection()
	var (
		bwkt string
		bok  bool
	)
	if co.firstProjectionOnly {
		bwkt, bok = a.Projection()
	} else {
		bwkt, bok = b.Projection()
	}

	// if neither has a spatial reference they are compatible
	if !aok && !bok {
		return true
	}
	// if only one has a spatial reference they are incompatible
	if !aok || !bok {
		return false
	}
	return awkt == bwkt
}

// CompatibleProjectionsTransformAndSizes reports whether two datasets
// cover the same pixel grid: compatible spatial references, identical
// raster dimensions and the exact same geotransform. Geotransform
// coefficients are compared exactly, not within a tolerance. Two datasets
// without a geotransform are compatible, a dataset with one is
// incompatible with a dataset without.
func CompatibleProjectionsTransformAndSizes(a, b Dataset, opts ...CompatibilityOption) bool {
	co := compatibilityOpts{}
	for _, o := range opts {
		o.setCompatibilityOpt(&co)
	}
	if !compatibleProjections(a, b, &co) {
		return false
	}

	aw, ah := a.RasterSize()
	bw, bh := b.RasterSize()
	if aw != bw || ah != bh {
		return false
	}

	agt, aerr := a.GeoTransform()
	bgt, berr := b.GeoTransform()

	// if neither has a transform mark as compatible
	if aerr != nil && berr != nil {
		return true
	}
	// only one has a transform so must be incompatible
	if aerr != nil || berr != nil {
		return false
	}
	return agt == bgt
}

// Package pointcloud defines a dense point cloud container for lidar sweeps
// and utilities for moving clouds between reference frames.
package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// MetaData is data about what is stored in the point cloud.
type MetaData struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData returns a new MetaData with bounds ready for merging.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64, MaxX: -math.MaxFloat64,
		MinY: math.MaxFloat64, MaxY: -math.MaxFloat64,
		MinZ: math.MaxFloat64, MaxZ: -math.MaxFloat64,
	}
}

// Merge updates the bounds to include the given point.
func (meta *MetaData) Merge(v r3.Vector) {
	if v.X > meta.MaxX {
		meta.MaxX = v.X
	}
	if v.Y > meta.MaxY {
		meta.MaxY = v.Y
	}
	if v.Z > meta.MaxZ {
		meta.MaxZ = v.Z
	}
	if v.X < meta.MinX {
		meta.MinX = v.X
	}
	if v.Y < meta.MinY {
		meta.MinY = v.Y
	}
	if v.Z < meta.MinZ {
		meta.MinZ = v.Z
	}
}

// PointCloud is a dense container of points in insertion order. Lidar sweeps
// are dense and ordered, so this is slice backed rather than keyed by
// position.
type PointCloud struct {
	points []r3.Vector
	meta   MetaData
}

// New returns an empty PointCloud.
func New() *PointCloud {
	return NewWithPrealloc(0)
}

// NewWithPrealloc returns an empty PointCloud with capacity for size points.
func NewWithPrealloc(size int) *PointCloud {
	return &PointCloud{
		points: make([]r3.Vector, 0, size),
		meta:   NewMetaData(),
	}
}

// Size returns the number of points in the cloud.
func (cloud *PointCloud) Size() int {
	return len(cloud.points)
}

// MetaData returns the bounds of the cloud.
func (cloud *PointCloud) MetaData() MetaData {
	return cloud.meta
}

// Add appends a point to the cloud and merges it into the bounds.
func (cloud *PointCloud) Add(p r3.Vector) {
	cloud.points = append(cloud.points, p)
	cloud.meta.Merge(p)
}

// At returns the point at index i.
func (cloud *PointCloud) At(i int) r3.Vector {
	return cloud.points[i]
}

// Points returns the backing point slice. Callers must not modify it.
func (cloud *PointCloud) Points() []r3.Vector {
	return cloud.points
}

// Iterate calls fn for each point in the cloud in insertion order. If fn
// returns false, iteration stops.
func (cloud *PointCloud) Iterate(fn func(p r3.Vector) bool) {
	for _, p := range cloud.points {
		if !fn(p) {
			return
		}
	}
}

// CalculateMean returns the mean position of the points in the cloud, or the
// zero vector for an empty cloud.
func CalculateMean(cloud *PointCloud) r3.Vector {
	if cloud.Size() == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, p := range cloud.points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(cloud.Size()))
}

package pointcloud

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CloudMatrix converts a point cloud to an Nx3 gonum matrix with one row per
// point. Returns nil for an empty cloud since a Dense cannot have zero rows.
func CloudMatrix(cloud *PointCloud) *mat.Dense {
	if cloud.Size() == 0 {
		return nil
	}
	data := make([]float64, 0, cloud.Size()*3)
	cloud.Iterate(func(p r3.Vector) bool {
		data = append(data, p.X, p.Y, p.Z)
		return true
	})
	return mat.NewDense(cloud.Size(), 3, data)
}

// CloudFromMatrix builds a point cloud from an Nx3 matrix with one row per
// point, failing if the matrix is not three columns wide.
func CloudFromMatrix(m mat.Matrix) (*PointCloud, error) {
	rows, cols := m.Dims()
	if cols != 3 {
		return nil, errors.Errorf("point matrix has %d columns, need exactly 3", cols)
	}
	cloud := NewWithPrealloc(rows)
	for i := 0; i < rows; i++ {
		cloud.Add(r3.Vector{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)})
	}
	return cloud, nil
}

// FromFlat builds a point cloud from a flat slice laid out x,y,z,x,y,z,...
// failing if the length is not a multiple of 3.
func FromFlat(data []float64) (*PointCloud, error) {
	if len(data)%3 != 0 {
		return nil, errors.Errorf("flat point data has %d elements, need a multiple of 3", len(data))
	}
	cloud := NewWithPrealloc(len(data) / 3)
	for i := 0; i < len(data); i += 3 {
		cloud.Add(r3.Vector{X: data[i], Y: data[i+1], Z: data[i+2]})
	}
	return cloud, nil
}

package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/openav/avkit/utils"
)

// RotationMatrix is a 3x3 orthonormal matrix in row major order.
// mat[3*r + c] is the element in the r'th row and c'th column.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of floats in row
// major order. The input is copied, so later writes to the slice do not
// affect the matrix. The values are not checked for orthonormality; use
// Validate for that.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	return &RotationMatrix{[9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}}, nil
}

// NewZeroRotationMatrix returns the identity matrix, which represents no rotation.
func NewZeroRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewYawRotationMatrix returns the matrix rotating points about the z axis by
// theta radians in the xy plane, counterclockwise when viewed from +z.
func NewYawRotationMatrix(theta float64) *RotationMatrix {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return &RotationMatrix{[9]float64{c, -s, 0, s, c, 0, 0, 0, 1}}
}

// At returns the element at the specified row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the indicated row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the indicated column as a vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[col+3], Z: rm.mat[col+6]}
}

// Transpose returns the transpose of the matrix. For a valid rotation matrix
// the transpose is also the inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}}
}

// Mul returns the matrix product rm * other.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	a := rm.mat
	b := other.mat
	return &RotationMatrix{[9]float64{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],
		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],
		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}}
}

// Apply rotates the vector v, treating it as a column vector.
func (rm *RotationMatrix) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{X: rm.Row(0).Dot(v), Y: rm.Row(1).Dot(v), Z: rm.Row(2).Dot(v)}
}

// Det returns the determinant of the matrix. A valid rotation matrix has
// determinant +1.
func (rm *RotationMatrix) Det() float64 {
	m := rm.mat
	return m[0]*(m[4]*m[8]-m[5]*m[7]) - m[1]*(m[3]*m[8]-m[5]*m[6]) + m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Validate checks that the matrix is a proper rotation, orthonormal with
// determinant +1 within tol. Constructors do not call this; callers that
// cannot trust their input should.
func (rm *RotationMatrix) Validate(tol float64) error {
	rrt := rm.Mul(rm.Transpose())
	ident := NewZeroRotationMatrix()
	for i := range rrt.mat {
		if !utils.Float64AlmostEqual(rrt.mat[i], ident.mat[i], tol) {
			return errors.New("rotation matrix is not orthonormal")
		}
	}
	if det := rm.Det(); !utils.Float64AlmostEqual(det, 1, tol) {
		return errors.Errorf("rotation matrix determinant is %f, need +1", det)
	}
	return nil
}

// Dense returns the matrix as a gonum Dense for batched linear algebra. The
// returned matrix is backed by a copy of the elements.
func (rm *RotationMatrix) Dense() *mat.Dense {
	m := rm.mat
	return mat.NewDense(3, 3, m[:])
}

// RotationMatrixAlmostEqual returns whether every element of the two matrices
// agrees within tol.
func RotationMatrixAlmostEqual(a, b *RotationMatrix, tol float64) bool {
	for i := range a.mat {
		if !utils.Float64AlmostEqual(a.mat[i], b.mat[i], tol) {
			return false
		}
	}
	return true
}

package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// QuatToRotationMatrix converts a quaternion to its rotation matrix. A gonum
// quat.Number is (w,x,y,z) ordered as (Real,Imag,Jmag,Kmag). The quaternion
// is normalized first, so near-unit input still yields a proper rotation.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	w, x, y, z := q.Real/n, q.Imag/n, q.Jmag/n, q.Kmag/n
	return &RotationMatrix{[9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}}
}

// RotationMatrixToQuat converts a rotation matrix to a unit quaternion by
// embedding it in a 4x4 matrix and using the mgl64 conversion.
func RotationMatrixToQuat(rm *RotationMatrix) quat.Number {
	m := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rm.At(r, c))
		}
	}
	q := mgl64.Mat4ToQuat(m)
	return quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}

// QuaternionAlmostEqual returns whether two quaternions represent nearly the
// same orientation, allowing for the double cover where q and -q are the same
// rotation.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	inner := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	return 1-inner*inner <= tol
}

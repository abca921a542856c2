// Package spatialmath defines spatial mathematical operations for rigid
// bodies in 3D space.
package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/openav/avkit/utils"
)

// RigidTransform is an element of SE(3), a rotation about the origin followed
// by a translation. It maps points in a source frame to a destination frame.
// A transform is immutable once constructed; Inverse and Compose return new
// transforms rather than mutating.
type RigidTransform struct {
	rotation    RotationMatrix
	translation r3.Vector
	transform   mgl64.Mat4
}

// NewRigidTransform creates a transform from a rotation matrix and a
// translation vector and caches the equivalent 4x4 homogeneous matrix. The
// rotation is copied, so the caller's matrix cannot affect the transform
// afterward.
func NewRigidTransform(rotation *RotationMatrix, translation r3.Vector) *RigidTransform {
	return &RigidTransform{
		rotation:    *rotation,
		translation: translation,
		transform:   homogeneousMatrix(rotation, translation),
	}
}

// NewZeroRigidTransform returns the identity transform, which maps every
// point to itself.
func NewZeroRigidTransform() *RigidTransform {
	return NewRigidTransform(NewZeroRotationMatrix(), r3.Vector{})
}

// NewRigidTransformFromQuaternion creates a transform whose rotation is given
// by a (w,x,y,z) ordered quaternion.
func NewRigidTransformFromQuaternion(q quat.Number, translation r3.Vector) *RigidTransform {
	return NewRigidTransform(QuatToRotationMatrix(q), translation)
}

// NewRigidTransformFromDualQuaternion creates a transform from a unit dual
// quaternion. The real part is normalized before conversion.
func NewRigidTransformFromDualQuaternion(dq dualquat.Number) *RigidTransform {
	if vecLen := quat.Abs(dq.Real); vecLen != 1 {
		dq.Real = quat.Scale(1/vecLen, dq.Real)
		dq.Dual = quat.Scale(1/vecLen, dq.Dual)
	}
	cart := dualquat.Mul(dq, dualquat.Conj(dq))
	translation := r3.Vector{X: cart.Dual.Imag, Y: cart.Dual.Jmag, Z: cart.Dual.Kmag}
	return NewRigidTransform(QuatToRotationMatrix(dq.Real), translation)
}

// Rotation returns a copy of the rotation matrix.
func (tf *RigidTransform) Rotation() *RotationMatrix {
	rm := tf.rotation
	return &rm
}

// Translation returns the translation vector.
func (tf *RigidTransform) Translation() r3.Vector {
	return tf.translation
}

// TransformMatrix returns the equivalent 4x4 homogeneous matrix: the top left
// 3x3 is the rotation, the top right column is the translation, and the
// bottom row is [0 0 0 1].
func (tf *RigidTransform) TransformMatrix() mgl64.Mat4 {
	return tf.transform
}

// TransformPoint maps a single point into the destination frame, p' = R*p + t.
func (tf *RigidTransform) TransformPoint(p r3.Vector) r3.Vector {
	return tf.rotation.Apply(p).Add(tf.translation)
}

// TransformPointCloud maps every point in pts into the destination frame.
// The rotation and translation are applied directly into a single
// preallocated result, never materializing an Nx4 homogeneous array. An empty
// input yields an empty result.
func (tf *RigidTransform) TransformPointCloud(pts []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	m := tf.rotation.mat
	t := tf.translation
	for i, p := range pts {
		out[i] = r3.Vector{
			X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + t.X,
			Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z + t.Y,
			Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z + t.Z,
		}
	}
	return out
}

// Inverse returns the transform mapping the destination frame back to the
// source frame: rotation Rᵀ and translation -Rᵀ*t.
func (tf *RigidTransform) Inverse() *RigidTransform {
	rt := tf.rotation.Transpose()
	return NewRigidTransform(rt, rt.Apply(tf.translation).Mul(-1))
}

// Compose combines two transforms into one. If tf maps frame A to frame B and
// other maps frame C to frame A, the result maps frame C to frame B; other is
// applied first, then tf. Equivalent to multiplying the two homogeneous
// matrices.
func (tf *RigidTransform) Compose(other *RigidTransform) *RigidTransform {
	rotation := tf.rotation.Mul(&other.rotation)
	translation := tf.rotation.Apply(other.translation).Add(tf.translation)
	return NewRigidTransform(rotation, translation)
}

// DualQuaternion returns the transform as a unit dual quaternion, the
// representation used by kinematics code: real part is the rotation
// quaternion r, dual part is (t/2)*r.
func (tf *RigidTransform) DualQuaternion() dualquat.Number {
	rot := RotationMatrixToQuat(tf.Rotation())
	half := quat.Number{Imag: tf.translation.X / 2, Jmag: tf.translation.Y / 2, Kmag: tf.translation.Z / 2}
	return dualquat.Number{Real: rot, Dual: quat.Mul(half, rot)}
}

// RigidTransformAlmostEqual returns whether every rotation element and
// translation component of the two transforms agrees within tol.
func RigidTransformAlmostEqual(a, b *RigidTransform, tol float64) bool {
	return RotationMatrixAlmostEqual(&a.rotation, &b.rotation, tol) &&
		utils.Float64AlmostEqual(a.translation.X, b.translation.X, tol) &&
		utils.Float64AlmostEqual(a.translation.Y, b.translation.Y, tol) &&
		utils.Float64AlmostEqual(a.translation.Z, b.translation.Z, tol)
}

func homogeneousMatrix(rm *RotationMatrix, t r3.Vector) mgl64.Mat4 {
	m := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rm.At(r, c))
		}
	}
	m.Set(0, 3, t.X)
	m.Set(1, 3, t.Y)
	m.Set(2, 3, t.Z)
	return m
}

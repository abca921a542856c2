package pointcloud

import (
	"github.com/openav/avkit/spatialmath"
)

// ApplyRigidTransform moves every point in the cloud to the transform's
// destination frame, returning a new cloud with recomputed bounds. The input
// cloud is unchanged.
func ApplyRigidTransform(cloud *PointCloud, tf *spatialmath.RigidTransform) *PointCloud {
	out := NewWithPrealloc(cloud.Size())
	for _, p := range tf.TransformPointCloud(cloud.Points()) {
		out.Add(p)
	}
	return out
}

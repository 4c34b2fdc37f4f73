package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// leftHanded mirrors view space x so +X is screen right when looking down +Z.
var leftHanded = mgl32.Scale3D(-1, 1, 1)

// ViewProjection is a left-handed look-at camera with a perspective
// projection: looking down +Z, +X is right and +Y is up.
type ViewProjection struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovAngleY   float32 // radians
	AspectRatio float32
	NearZ       float32
	FarZ        float32

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// New returns a camera at (0,0,-50) looking at the origin with a 45 degree
// vertical field of view. Matrices are computed before it is returned.
func New(aspect float32) ViewProjection {
	vp := ViewProjection{
		Eye:         mgl32.Vec3{0, 0, -50},
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		FovAngleY:   mgl32.DegToRad(45),
		AspectRatio: aspect,
		NearZ:       0.1,
		FarZ:        1000,
	}
	vp.UpdateMatrix()
	return vp
}

// UpdateMatrix recomputes View and Projection from the current fields.
func (vp *ViewProjection) UpdateMatrix() {
	vp.View = leftHanded.Mul4(mgl32.LookAtV(vp.Eye, vp.Target, vp.Up))
	vp.Projection = mgl32.Perspective(vp.FovAngleY, vp.AspectRatio, vp.NearZ, vp.FarZ)
}

// ViewProjectionMatrix returns Projection * View.
func (vp *ViewProjection) ViewProjectionMatrix() mgl32.Mat4 {
	return vp.Projection.Mul4(vp.View)
}

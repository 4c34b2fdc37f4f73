package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gamescene/camera"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	vp := camera.New(16.0 / 9.0)

	assert.Equal(t, mgl32.Vec3{0, 0, -50}, vp.Eye)
	assert.True(t, vp.View.ApproxEqual(mgl32.Scale3D(-1, 1, 1).Mul4(mgl32.LookAtV(vp.Eye, vp.Target, vp.Up))))
	assert.True(t, vp.Projection.ApproxEqual(mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 1000)))
}

func TestUpdateMatrix(t *testing.T) {
	vp := camera.New(1)
	before := vp.View

	vp.Eye = mgl32.Vec3{0, 0, -10}
	assert.Equal(t, before, vp.View, "matrices only change on UpdateMatrix")

	vp.UpdateMatrix()
	assert.False(t, before.ApproxEqual(vp.View))

	// The target lands on the view axis at the eye distance.
	p := mgl32.TransformCoordinate(vp.Target, vp.View)
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -10, p.Z(), 1e-5)
}

func TestViewProjectionMatrix(t *testing.T) {
	vp := camera.New(1)
	assert.True(t, vp.ViewProjectionMatrix().ApproxEqual(vp.Projection.Mul4(vp.View)))

	// The target projects to the center of clip space.
	clip := vp.ViewProjectionMatrix().Mul4x1(vp.Target.Vec4(1))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-5)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-5)
}

func TestHandedness(t *testing.T) {
	for _, eye := range []mgl32.Vec3{{0, 0, -10}, {0, 10, -40}} {
		vp := camera.New(1280.0 / 720.0)
		vp.Eye = eye
		vp.UpdateMatrix()

		m := vp.ViewProjectionMatrix()
		right := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
		assert.Greater(t, right.X()/right.W(), float32(0), "+X is right of center from %v", eye)

		up := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
		assert.Greater(t, up.Y()/up.W(), right.Y()/right.W(), "+Y is up from %v", eye)
	}
}

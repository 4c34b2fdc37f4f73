package transform_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gamescene/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatEqual(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	assert.Truef(t, expected.ApproxEqualThreshold(actual, 1e-5), "expected\n%v\ngot\n%v", expected, actual)
}

func TestNodeLocal(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		n := transform.NewNode()
		assertMatEqual(t, mgl32.Ident4(), n.Local())
	})

	t.Run("translation only", func(t *testing.T) {
		n := transform.NewNode()
		n.Translation = mgl32.Vec3{1, 2, 3}
		assertMatEqual(t, mgl32.Translate3D(1, 2, 3), n.Local())
	})

	t.Run("scale is applied before translation", func(t *testing.T) {
		n := transform.NewNode()
		n.Scale = mgl32.Vec3{2, 2, 2}
		n.Translation = mgl32.Vec3{0, 0, 5}

		p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, n.Local())
		assert.InDelta(t, 2, p.X(), 1e-5)
		assert.InDelta(t, 5, p.Z(), 1e-5)
	})

	t.Run("yaw turns +z toward +x", func(t *testing.T) {
		n := transform.NewNode()
		n.Rotation = mgl32.Vec3{0, math.Pi / 2, 0}

		p := mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, n.Local())
		assert.InDelta(t, 1, p.X(), 1e-5)
		assert.InDelta(t, 0, p.Z(), 1e-5)
	})
}

func TestArena(t *testing.T) {
	t.Run("parent must exist", func(t *testing.T) {
		arena := transform.NewArena(2)
		child := transform.NewNode()
		child.Parent = 0

		_, err := arena.Add(child)
		require.EqualError(t, err, "transform: parent 0 not in arena of 0 nodes")
		assert.Equal(t, 0, arena.Len())
	})

	t.Run("handles are sequential", func(t *testing.T) {
		arena := transform.NewArena(2)
		h0, err := arena.Add(transform.NewNode())
		require.NoError(t, err)
		child := transform.NewNode()
		child.Parent = h0
		h1, err := arena.Add(child)
		require.NoError(t, err)

		assert.Equal(t, transform.Handle(0), h0)
		assert.Equal(t, transform.Handle(1), h1)
		assert.Nil(t, arena.Get(2))
		assert.Nil(t, arena.Get(transform.NoParent))
	})

	t.Run("child of identity parent equals its local matrix", func(t *testing.T) {
		arena := transform.NewArena(2)
		root, _ := arena.Add(transform.NewNode())

		child := transform.NewNode()
		child.Parent = root
		child.Scale = mgl32.Vec3{1, 2, 3}
		child.Rotation = mgl32.Vec3{0.3, 1.1, -0.4}
		child.Translation = mgl32.Vec3{4, 5, 6}
		h, _ := arena.Add(child)

		arena.UpdateMatrices()

		n := arena.Get(h)
		assertMatEqual(t, n.Local(), n.World)
	})

	t.Run("child composes with parent", func(t *testing.T) {
		arena := transform.NewArena(2)
		parent := transform.NewNode()
		parent.Translation = mgl32.Vec3{10, 0, 0}
		parent.Rotation = mgl32.Vec3{0, math.Pi / 2, 0}
		root, _ := arena.Add(parent)

		child := transform.NewNode()
		child.Parent = root
		child.Translation = mgl32.Vec3{0, 4.5, 1}
		h, _ := arena.Add(child)

		arena.UpdateMatrices()

		n := arena.Get(h)
		assertMatEqual(t, arena.Get(root).World.Mul4(n.Local()), n.World)

		pos := n.Position()
		assert.InDelta(t, 11, pos.X(), 1e-5)
		assert.InDelta(t, 4.5, pos.Y(), 1e-5)
		assert.InDelta(t, 0, pos.Z(), 1e-5)
	})

	t.Run("mutations are picked up on update", func(t *testing.T) {
		arena := transform.NewArena(1)
		h, _ := arena.Add(transform.NewNode())
		arena.UpdateMatrices()

		arena.Get(h).Translation = mgl32.Vec3{1, 1, 1}
		assertMatEqual(t, mgl32.Ident4(), arena.Get(h).World)

		arena.UpdateMatrix(h)
		assertMatEqual(t, mgl32.Translate3D(1, 1, 1), arena.Get(h).World)
	})

	t.Run("All visits in order and stops early", func(t *testing.T) {
		arena := transform.NewArena(3)
		for i := 0; i < 3; i++ {
			arena.Add(transform.NewNode())
		}

		var seen []transform.Handle
		for h := range arena.All() {
			seen = append(seen, h)
			if h == 1 {
				break
			}
		}
		assert.Equal(t, []transform.Handle{0, 1}, seen)
	})
}

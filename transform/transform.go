// Package transform holds scene transform nodes in a flat arena. Parent links
// are indices into the arena rather than pointers, so nodes can be copied and
// inspected freely without aliasing.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Handle identifies a node inside an Arena.
type Handle int

// NoParent marks a root node.
const NoParent Handle = -1

// Node is a scale/rotation/translation triple with an optional parent.
// Rotation is stored as Euler angles in radians and applied Z, then X, then Y.
type Node struct {
	Scale       mgl32.Vec3
	Rotation    mgl32.Vec3
	Translation mgl32.Vec3
	Parent      Handle

	// World is derived; call Arena.UpdateMatrices after mutating the node.
	World mgl32.Mat4
}

// NewNode returns a root node with unit scale and no rotation or translation.
func NewNode() Node {
	return Node{
		Scale:  mgl32.Vec3{1, 1, 1},
		Parent: NoParent,
		World:  mgl32.Ident4(),
	}
}

// Local returns the node's own transform matrix, T * Ry * Rx * Rz * S.
func (n *Node) Local() mgl32.Mat4 {
	scale := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	rot := mgl32.HomogRotate3DY(n.Rotation.Y()).
		Mul4(mgl32.HomogRotate3DX(n.Rotation.X())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	translate := mgl32.Translate3D(n.Translation.X(), n.Translation.Y(), n.Translation.Z())

	return translate.Mul4(rot).Mul4(scale)
}

// Position returns the world-space origin of the node.
func (n *Node) Position() mgl32.Vec3 {
	return n.World.Col(3).Vec3()
}

// Arena stores nodes contiguously. A node's parent always precedes it, so a
// single in-order pass over the arena updates any hierarchy.
type Arena struct {
	nodes []Node
}

// NewArena returns an arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// Add appends a node and returns its handle. The node's parent must already be
// in the arena.
func (a *Arena) Add(node Node) (Handle, error) {
	if node.Parent != NoParent && !a.valid(node.Parent) {
		return NoParent, errors.Errorf("transform: parent %d not in arena of %d nodes", node.Parent, len(a.nodes))
	}
	a.nodes = append(a.nodes, node)
	return Handle(len(a.nodes) - 1), nil
}

func (a *Arena) valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.nodes)
}

// Len returns the number of nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Get returns a pointer to the node for in-place mutation, or nil for an
// unknown handle.
func (a *Arena) Get(h Handle) *Node {
	if !a.valid(h) {
		return nil
	}
	return &a.nodes[h]
}

// All iterates nodes in arena order, parents before children.
func (a *Arena) All() func(yield func(Handle, *Node) bool) {
	return func(yield func(Handle, *Node) bool) {
		for i := range a.nodes {
			if !yield(Handle(i), &a.nodes[i]) {
				return
			}
		}
	}
}

// UpdateMatrix recomputes one node's world matrix from its parent's current
// world matrix. The parent must be up to date.
func (a *Arena) UpdateMatrix(h Handle) {
	n := a.Get(h)
	if n == nil {
		return
	}

	world := n.Local()
	if parent := a.Get(n.Parent); parent != nil {
		world = parent.World.Mul4(world)
	}
	n.World = world
}

// UpdateMatrices recomputes every world matrix in arena order.
func (a *Arena) UpdateMatrices() {
	for i := range a.nodes {
		a.UpdateMatrix(Handle(i))
	}
}

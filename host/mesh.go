package host

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is an indexed triangle list with one texture coordinate per vertex.
type Mesh struct {
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Triangles returns the number of complete triangles.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// CubeMesh returns a cube spanning -1..1 on every axis with each face mapped
// to the whole texture.
func CubeMesh() Mesh {
	faces := [6][4]mgl32.Vec3{
		{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, // front (-z)
		{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}},     // back (+z)
		{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, // left
		{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},     // right
		{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},     // top
		{{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}, // bottom
	}
	uvs := [4]mgl32.Vec2{{0, 1}, {0, 0}, {1, 0}, {1, 1}}

	m := Mesh{
		Positions: make([]mgl32.Vec3, 0, 24),
		UVs:       make([]mgl32.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, face := range faces {
		base := uint32(len(m.Positions))
		for i, p := range face {
			m.Positions = append(m.Positions, p)
			m.UVs = append(m.UVs, uvs[i])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// LoadGLTF reads the first primitive of the first mesh in a .gltf or .glb file.
func LoadGLTF(path string) (Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Mesh{}, errors.Wrapf(err, "open %s", path)
	}
	return meshFromDocument(doc)
}

func meshFromDocument(doc *gltf.Document) (Mesh, error) {
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return Mesh{}, errors.New("gltf: no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return Mesh{}, errors.New("gltf: primitive has no POSITION")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return Mesh{}, errors.Wrap(err, "gltf: read positions")
	}

	var m Mesh
	m.Positions = make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		m.Positions[i] = mgl32.Vec3(p)
	}

	m.UVs = make([]mgl32.Vec2, len(positions))
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return Mesh{}, errors.Wrap(err, "gltf: read texture coordinates")
		}
		for i := 0; i < len(uvs) && i < len(m.UVs); i++ {
			m.UVs[i] = mgl32.Vec2(uvs[i])
		}
	}

	if prim.Indices != nil {
		m.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return Mesh{}, errors.Wrap(err, "gltf: read indices")
		}
	} else {
		m.Indices = make([]uint32, len(positions))
		for i := range m.Indices {
			m.Indices[i] = uint32(i)
		}
	}

	for _, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return Mesh{}, errors.Errorf("gltf: index %d out of range", idx)
		}
	}
	return m, nil
}

package host

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gamescene/camera"
	"github.com/plus3/gamescene/scene"
	"github.com/plus3/gamescene/transform"
	"go.uber.org/zap"
)

const maxBatchVertices = 1<<16 - 3

// triangle is a projected triangle waiting for the depth sort.
type triangle struct {
	verts   [3]ebiten.Vertex
	depth   float32
	texture scene.TextureHandle
}

// ModelBatch collects projected triangles between PreDraw and PostDraw and
// paints them back to front.
type ModelBatch struct {
	textures  *TextureLoader
	target    *ebiten.Image
	triangles []triangle
	white     *ebiten.Image
}

func NewModelBatch(textures *TextureLoader) *ModelBatch {
	white := ebiten.NewImage(1, 1)
	white.Fill(colorWhite)
	return &ModelBatch{textures: textures, white: white}
}

func (b *ModelBatch) PreDraw(cmd scene.CommandList) {
	b.target, _ = cmd.(*ebiten.Image)
	b.triangles = b.triangles[:0]
}

func (b *ModelBatch) PostDraw() {
	if b.target != nil {
		sortBackToFront(b.triangles)
		b.flush()
	}
	b.triangles = b.triangles[:0]
	b.target = nil
}

// clearDepth drops triangles that have been projected but not drawn.
func (b *ModelBatch) clearDepth() {
	b.triangles = b.triangles[:0]
}

func sortBackToFront(tris []triangle) {
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].depth > tris[j].depth
	})
}

func (b *ModelBatch) flush() {
	var (
		vertices []ebiten.Vertex
		indices  []uint16
		current  scene.TextureHandle
	)
	draw := func() {
		if len(vertices) == 0 {
			return
		}
		img := b.textures.Get(current)
		if img == nil {
			img = b.white
		}
		b.target.DrawTriangles(vertices, indices, img, &ebiten.DrawTrianglesOptions{
			Address: ebiten.AddressRepeat,
		})
		vertices = vertices[:0]
		indices = indices[:0]
	}

	for _, tri := range b.triangles {
		if tri.texture != current || len(vertices) >= maxBatchVertices {
			draw()
			current = tri.texture
		}
		base := uint16(len(vertices))
		vertices = append(vertices, tri.verts[:]...)
		indices = append(indices, base, base+1, base+2)
	}
	draw()
}

// Model draws a mesh through a ModelBatch.
type Model struct {
	mesh     *Mesh
	batch    *ModelBatch
	log      *zap.Logger
	released bool
}

func (m *Model) Draw(node *transform.Node, vp *camera.ViewProjection, texture scene.TextureHandle) {
	if m.released || m.batch.target == nil {
		return
	}

	var texW, texH float32 = 1, 1
	if img := m.batch.textures.Get(texture); img != nil {
		bounds := img.Bounds()
		texW, texH = float32(bounds.Dx()), float32(bounds.Dy())
	}

	bounds := m.batch.target.Bounds()
	mvp := vp.ViewProjectionMatrix().Mul4(node.World)
	m.batch.triangles = projectMesh(m.mesh, mvp, float32(bounds.Dx()), float32(bounds.Dy()), texW, texH, texture, m.batch.triangles)
}

func (m *Model) Release() {
	if m.released {
		m.log.Warn("Model released twice")
		return
	}
	m.released = true
	m.mesh = nil
}

// projectMesh transforms mesh triangles to screen space and appends them to
// out. Triangles with a vertex behind the eye are dropped.
func projectMesh(mesh *Mesh, mvp mgl32.Mat4, width, height, texW, texH float32, texture scene.TextureHandle, out []triangle) []triangle {
	for t := 0; t < mesh.Triangles(); t++ {
		var tri triangle
		tri.texture = texture
		visible := true

		for i := 0; i < 3; i++ {
			idx := mesh.Indices[t*3+i]
			clip := mvp.Mul4x1(mesh.Positions[idx].Vec4(1))
			if clip.W() <= 1e-5 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			uv := mesh.UVs[idx]

			tri.verts[i] = ebiten.Vertex{
				DstX:   (ndc.X() + 1) / 2 * width,
				DstY:   (1 - ndc.Y()) / 2 * height,
				SrcX:   uv.X() * texW,
				SrcY:   uv.Y() * texH,
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			}
			tri.depth += ndc.Z() / 3
		}

		if visible {
			out = append(out, tri)
		}
	}
	return out
}

// ModelFactory creates models sharing one mesh.
type ModelFactory struct {
	mesh  Mesh
	batch *ModelBatch
	log   *zap.Logger
}

// NewModelFactory uses the glTF file at path when it is non-empty and a cube
// otherwise.
func NewModelFactory(batch *ModelBatch, path string, log *zap.Logger) (*ModelFactory, error) {
	mesh := CubeMesh()
	if path != "" {
		var err error
		if mesh, err = LoadGLTF(path); err != nil {
			return nil, err
		}
		log.Info("Loaded model", zap.String("path", path), zap.Int("triangles", mesh.Triangles()))
	}
	return &ModelFactory{mesh: mesh, batch: batch, log: log}, nil
}

func (f *ModelFactory) Create() (scene.Model, error) {
	mesh := f.mesh
	return &Model{mesh: &mesh, batch: f.batch, log: f.log}, nil
}

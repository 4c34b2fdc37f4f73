package scene_test

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/plus3/gamescene/camera"
	"github.com/plus3/gamescene/scene"
	"github.com/plus3/gamescene/transform"
)

// recorder is a fake engine that logs every call in order.
type recorder struct {
	calls []string

	textureErr error
	modelErr   error
	releases   int
	drawn      []transform.Node
	texts      []string
}

type fakeCommandList struct{}

type fakeBatch struct {
	name string
	r    *recorder
}

func (b fakeBatch) PreDraw(cmd scene.CommandList) {
	b.r.calls = append(b.r.calls, b.name+".PreDraw")
}

func (b fakeBatch) PostDraw() {
	b.r.calls = append(b.r.calls, b.name+".PostDraw")
}

type fakeDevice struct{ r *recorder }

func (d fakeDevice) CommandList() scene.CommandList {
	return fakeCommandList{}
}

func (d fakeDevice) ClearDepthBuffer() {
	d.r.calls = append(d.r.calls, "Device.ClearDepthBuffer")
}

type fakeTextures struct{ r *recorder }

func (t fakeTextures) Load(name string) (scene.TextureHandle, error) {
	if t.r.textureErr != nil {
		return 0, t.r.textureErr
	}
	t.r.calls = append(t.r.calls, "Textures.Load("+name+")")
	return 7, nil
}

type fakeModel struct{ r *recorder }

func (m fakeModel) Draw(node *transform.Node, vp *camera.ViewProjection, texture scene.TextureHandle) {
	m.r.calls = append(m.r.calls, fmt.Sprintf("Model.Draw(tex=%d)", texture))
	m.r.drawn = append(m.r.drawn, *node)
}

func (m fakeModel) Release() {
	m.r.releases++
}

type fakeModelFactory struct{ r *recorder }

func (f fakeModelFactory) Create() (scene.Model, error) {
	if f.r.modelErr != nil {
		return nil, f.r.modelErr
	}
	return fakeModel{r: f.r}, nil
}

type fakeDebugText struct {
	r    *recorder
	x, y int
}

func (d *fakeDebugText) SetPos(x, y int) {
	d.x, d.y = x, y
}

func (d *fakeDebugText) Printf(format string, args ...any) {
	d.r.texts = append(d.r.texts, fmt.Sprintf("%d,%d:", d.x, d.y)+fmt.Sprintf(format, args...))
}

func (d *fakeDebugText) DrawAll(cmd scene.CommandList) {
	d.r.calls = append(d.r.calls, "DebugText.DrawAll")
}

type fakeAudio struct{}

func (fakeAudio) SampleRate() int { return 44100 }

func newDeps(r *recorder, input scene.Input) scene.Deps {
	return scene.Deps{
		Device:       fakeDevice{r: r},
		Sprites:      fakeBatch{name: "Sprites", r: r},
		Models:       fakeBatch{name: "Models", r: r},
		Textures:     fakeTextures{r: r},
		ModelFactory: fakeModelFactory{r: r},
		Input:        input,
		Audio:        fakeAudio{},
		DebugText:    &fakeDebugText{r: r},
	}
}

var errMissing = errors.New("file not found")

package scene

import (
	"github.com/plus3/gamescene/camera"
	"github.com/plus3/gamescene/transform"
	"go.uber.org/zap"
)

// CommandList is the engine's opaque draw target for one frame.
type CommandList any

// TextureHandle identifies a texture loaded by a TextureLoader.
type TextureHandle uint32

// Device exposes the per-frame command list and depth buffer.
type Device interface {
	CommandList() CommandList
	ClearDepthBuffer()
}

// DrawBatch brackets a group of draw calls of one category (sprites or models).
type DrawBatch interface {
	PreDraw(cmd CommandList)
	PostDraw()
}

type TextureLoader interface {
	Load(name string) (TextureHandle, error)
}

// Model draws one mesh per call. Release frees engine resources and is called
// exactly once by the scene that created it.
type Model interface {
	Draw(node *transform.Node, vp *camera.ViewProjection, texture TextureHandle)
	Release()
}

type ModelFactory interface {
	Create() (Model, error)
}

// Input reports whether a logical key is currently held down.
type Input interface {
	IsHeld(key Key) bool
}

// DebugText queues formatted lines at a screen position; DrawAll renders and
// clears the queue.
type DebugText interface {
	SetPos(x, y int)
	Printf(format string, args ...any)
	DrawAll(cmd CommandList)
}

// Audio is held by the scene for sound playback; the demo scene itself plays nothing.
type Audio interface {
	SampleRate() int
}

// Deps are the engine collaborators a Scene is built from.
type Deps struct {
	Device       Device
	Sprites      DrawBatch
	Models       DrawBatch
	Textures     TextureLoader
	ModelFactory ModelFactory
	Input        Input
	Audio        Audio
	DebugText    DebugText
	Logger       *zap.Logger
}

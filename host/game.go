// Package host runs a scene on ebiten. It implements the engine contracts the
// scene consumes: device, draw batches, textures, models, input, debug text
// and audio.
package host

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/gamescene/scene"
)

// SampleRate is the audio context rate handed to the scene.
const SampleRate = 44100

// NewAudio returns the process's audio context. ebiten allows only one.
func NewAudio() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// Overlay draws on top of the scene, e.g. a debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// FrameTimes records how long each Update and Draw call took. Nothing is
// kept unless Enabled is set.
type FrameTimes struct {
	Enabled bool
	Update  []time.Duration
	Draw    []time.Duration
}

func (t *FrameTimes) addUpdate(d time.Duration) {
	if t.Enabled {
		t.Update = append(t.Update, d)
	}
}

func (t *FrameTimes) addDraw(d time.Duration) {
	if t.Enabled {
		t.Draw = append(t.Draw, d)
	}
}

// Game adapts a scene to ebiten.Game.
type Game struct {
	Scene   *scene.Scene
	Device  *Device
	Overlay Overlay
	Width   int
	Height  int
	Times   FrameTimes
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	start := time.Now()
	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}
	g.Scene.UpdateDelta(1.0 / float64(ebiten.TPS()))
	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	g.Times.addUpdate(time.Since(start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.Device.Begin(screen)
	g.Scene.Draw()
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
	g.Times.addDraw(time.Since(start))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(g.Width, g.Height)
	}
	return g.Width, g.Height
}

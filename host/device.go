package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gamescene/scene"
	"go.uber.org/zap"
)

var (
	colorWhite      = color.White
	colorBackground = color.RGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}
)

// Device hands the current screen to the scene as its command list.
type Device struct {
	target *ebiten.Image
	models *ModelBatch
}

func NewDevice(models *ModelBatch) *Device {
	return &Device{models: models}
}

// Begin starts a frame on screen, clearing it to the background color.
func (d *Device) Begin(screen *ebiten.Image) {
	d.target = screen
	screen.Fill(colorBackground)
}

func (d *Device) CommandList() scene.CommandList {
	return d.target
}

func (d *Device) ClearDepthBuffer() {
	if d.models != nil {
		d.models.clearDepth()
	}
}

// SpriteBatch brackets sprite drawing. Unbalanced brackets are logged.
type SpriteBatch struct {
	log    *zap.Logger
	target *ebiten.Image
	open   bool
}

func NewSpriteBatch(log *zap.Logger) *SpriteBatch {
	return &SpriteBatch{log: log}
}

func (b *SpriteBatch) PreDraw(cmd scene.CommandList) {
	if b.open {
		b.log.Warn("Sprite PreDraw without PostDraw")
	}
	b.target, _ = cmd.(*ebiten.Image)
	b.open = true
}

func (b *SpriteBatch) PostDraw() {
	if !b.open {
		b.log.Warn("Sprite PostDraw without PreDraw")
	}
	b.target = nil
	b.open = false
}

// isOpen reports whether a PreDraw is waiting for its PostDraw.
func (b *SpriteBatch) isOpen() bool {
	return b.open
}

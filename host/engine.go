package host

import (
	"context"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/gamescene/logging"
	"github.com/plus3/gamescene/scene"
	"go.uber.org/zap"
)

type EngineConfig struct {
	Assets   string
	Model    string // glTF file relative to Assets; empty for the built-in cube
	Bindings map[string][]string
}

// Engine owns the ebiten implementations of every scene collaborator.
type Engine struct {
	Device       *Device
	Sprites      *SpriteBatch
	Models       *ModelBatch
	Textures     *TextureLoader
	ModelFactory *ModelFactory
	Input        *Input
	DebugText    *DebugText
	Audio        *audio.Context
	log          *zap.Logger
}

// NewEngine builds the adapters, logging through the logger carried by ctx.
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	log := logging.From(ctx).Named("host")
	input, err := NewInput(cfg.Bindings)
	if err != nil {
		return nil, err
	}

	textures := NewTextureLoader(cfg.Assets, log.Named("textures"))
	models := NewModelBatch(textures)

	modelPath := ""
	if cfg.Model != "" {
		modelPath = filepath.Join(cfg.Assets, cfg.Model)
	}
	factory, err := NewModelFactory(models, modelPath, log.Named("models"))
	if err != nil {
		return nil, err
	}

	return &Engine{
		Device:       NewDevice(models),
		Sprites:      NewSpriteBatch(log.Named("sprites")),
		Models:       models,
		Textures:     textures,
		ModelFactory: factory,
		Input:        input,
		DebugText:    NewDebugText(),
		Audio:        NewAudio(),
		log:          log,
	}, nil
}

// Deps returns the engine as scene dependencies.
func (e *Engine) Deps() scene.Deps {
	return scene.Deps{
		Device:       e.Device,
		Sprites:      e.Sprites,
		Models:       e.Models,
		Textures:     e.Textures,
		ModelFactory: e.ModelFactory,
		Input:        e.Input,
		Audio:        e.Audio,
		DebugText:    e.DebugText,
		Logger:       e.log.Named("scene"),
	}
}

// Package scene implements the demo game scene: it loads a texture and a
// model, places transform nodes, runs a keyboard-driven controller every frame
// and issues draw calls in a fixed three-pass order.
package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/plus3/gamescene/camera"
	"github.com/plus3/gamescene/frame"
	"github.com/plus3/gamescene/transform"
	"go.uber.org/zap"
)

// DefaultDeltaTime is the frame time assumed by Update.
const DefaultDeltaTime = 1.0 / 60.0

// State is everything the controller mutates and the draw sequencer reads.
type State struct {
	Nodes   *transform.Arena
	Primary transform.Handle
	Heading mgl32.Vec3
	Camera  camera.ViewProjection

	Texture TextureHandle
	Model   Model
}

type Scene struct {
	deps      Deps
	opts      Options
	log       *zap.Logger
	state     State
	scheduler *frame.Scheduler

	initialized bool
	closed      bool
}

// New creates a scene. Nothing is loaded until Initialize.
func New(deps Deps, opts Options) *Scene {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		deps:      deps,
		opts:      opts,
		log:       log.With(zap.Stringer("variant", opts.Variant)),
		scheduler: frame.NewScheduler(),
	}
}

func (s *Scene) checkDeps() error {
	switch {
	case s.deps.Device == nil:
		return errors.New("scene: no device")
	case s.deps.Sprites == nil:
		return errors.New("scene: no sprite batch")
	case s.deps.Models == nil:
		return errors.New("scene: no model batch")
	case s.deps.Textures == nil:
		return errors.New("scene: no texture loader")
	case s.deps.ModelFactory == nil:
		return errors.New("scene: no model factory")
	case s.deps.Input == nil:
		return errors.New("scene: no input")
	case s.deps.DebugText == nil:
		return errors.New("scene: no debug text")
	}
	return nil
}

// Initialize loads the texture and model, places the nodes and camera for the
// configured variant, and registers the per-frame systems.
func (s *Scene) Initialize() error {
	if s.initialized {
		return errors.New("scene: already initialized")
	}
	if err := s.checkDeps(); err != nil {
		return err
	}

	texture, err := s.deps.Textures.Load(s.opts.TextureName)
	if err != nil {
		return errors.Wrapf(err, "load texture %q", s.opts.TextureName)
	}
	model, err := s.deps.ModelFactory.Create()
	if err != nil {
		return errors.Wrap(err, "create model")
	}

	s.state = State{
		Texture: texture,
		Model:   model,
		Camera:  camera.New(s.opts.AspectRatio),
	}

	switch s.opts.Variant {
	case VariantFreeCamera:
		err = s.placeScattered()
	case VariantSteer:
		err = s.placeSteered()
	default:
		err = errors.Errorf("scene: unknown variant %d", s.opts.Variant)
	}
	if err != nil {
		model.Release()
		s.state.Model = nil
		return err
	}

	s.registerSystems()

	s.state.Nodes.UpdateMatrices()
	s.state.Camera.UpdateMatrix()
	s.initialized = true

	s.log.Info("Scene initialized",
		zap.String("texture", s.opts.TextureName),
		zap.Uint32("textureHandle", uint32(texture)),
		zap.Int("nodes", s.state.Nodes.Len()))
	return nil
}

// placeScattered gives two nodes a random rotation and position and puts the
// eye at (0,0,-10).
func (s *Scene) placeScattered() error {
	seed := s.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rot := func() float32 { return rng.Float32() * math.Pi * 2 }
	pos := func() float32 { return rng.Float32()*20 - 10 }

	s.state.Nodes = transform.NewArena(2)
	for i := 0; i < 2; i++ {
		node := transform.NewNode()
		node.Rotation = mgl32.Vec3{rot(), rot(), rot()}
		node.Translation = mgl32.Vec3{pos(), pos(), pos()}
		if _, err := s.state.Nodes.Add(node); err != nil {
			return err
		}
	}
	s.state.Primary = 0
	s.state.Camera.Eye = mgl32.Vec3{0, 0, -10}

	s.log.Debug("Placed scattered nodes", zap.Uint64("seed", seed))
	return nil
}

// placeSteered puts a parent node at the origin with a child stacked above it.
func (s *Scene) placeSteered() error {
	s.state.Nodes = transform.NewArena(2)

	root, err := s.state.Nodes.Add(transform.NewNode())
	if err != nil {
		return err
	}
	child := transform.NewNode()
	child.Parent = root
	child.Translation = mgl32.Vec3{0, 4.5, 0}
	if _, err := s.state.Nodes.Add(child); err != nil {
		return err
	}

	s.state.Primary = root
	s.state.Heading = Heading(0)
	s.state.Camera.Eye = mgl32.Vec3{0, 10, -40}
	return nil
}

func (s *Scene) registerSystems() {
	switch s.opts.Variant {
	case VariantFreeCamera:
		s.scheduler.Register(&EyeMoveSystem{
			State:        &s.state,
			Input:        s.deps.Input,
			Speed:        s.opts.EyeSpeed,
			ScaleByDelta: s.opts.ScaleByDelta,
		})
	case VariantSteer:
		s.scheduler.Register(&SteerSystem{
			State:        &s.state,
			Input:        s.deps.Input,
			RotateSpeed:  s.opts.RotateSpeed,
			MoveSpeed:    s.opts.MoveSpeed,
			ScaleByDelta: s.opts.ScaleByDelta,
		})
		s.scheduler.Register(&ResetSystem{State: &s.state, Input: s.deps.Input})
	}

	s.scheduler.Register(&MatrixSystem{State: &s.state})

	if s.opts.DebugText {
		s.scheduler.Register(&DebugTextSystem{
			State:   &s.state,
			Text:    s.deps.DebugText,
			Variant: s.opts.Variant,
		})
	}
}

// AddSystem registers an extra system that runs after the scene's own
// systems each frame.
func (s *Scene) AddSystem(system frame.System) {
	s.scheduler.Register(system)
}

// Update advances one frame at DefaultDeltaTime.
func (s *Scene) Update() {
	s.UpdateDelta(DefaultDeltaTime)
}

// UpdateDelta advances one frame. dt only affects motion when
// Options.ScaleByDelta is set.
func (s *Scene) UpdateDelta(dt float64) {
	if !s.initialized || s.closed {
		return
	}
	s.scheduler.Once(dt)
}

// Draw issues the frame's draw calls: background sprites, 3D objects, then
// foreground sprites with debug text.
func (s *Scene) Draw() {
	if !s.initialized || s.closed {
		return
	}

	cmd := s.deps.Device.CommandList()

	// Background sprites.
	s.deps.Sprites.PreDraw(cmd)
	s.deps.Sprites.PostDraw()
	s.deps.Device.ClearDepthBuffer()

	// 3D objects.
	s.deps.Models.PreDraw(cmd)
	for _, node := range s.state.Nodes.All() {
		s.state.Model.Draw(node, &s.state.Camera, s.state.Texture)
	}
	s.deps.Models.PostDraw()

	// Foreground sprites.
	s.deps.Sprites.PreDraw(cmd)
	s.deps.DebugText.DrawAll(cmd)
	s.deps.Sprites.PostDraw()
}

// Close releases the model. It is safe to call more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.state.Model != nil {
		s.state.Model.Release()
		s.state.Model = nil
	}
	s.log.Info("Scene closed", zap.Uint64("frames", s.scheduler.Frames()))
}

// State exposes the live scene state.
func (s *Scene) State() *State {
	return &s.state
}

func (s *Scene) Options() Options {
	return s.opts
}

// Stats returns per-system timing for the controller.
func (s *Scene) Stats() *frame.SchedulerStats {
	return s.scheduler.GetStats()
}

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gamescene/frame"
)

const twoPi = 2 * math.Pi

// step returns the motion increment for this frame.
func step(base float32, f *frame.UpdateFrame, scaleByDelta bool) float32 {
	if !scaleByDelta {
		return base
	}
	return base * float32(f.DeltaTime*60)
}

// wrapAngle maps an angle into [0, 2π).
func wrapAngle(a float32) float32 {
	w := math.Mod(float64(a), twoPi)
	if w < 0 {
		w += twoPi
	}
	if w >= twoPi {
		w = 0
	}
	return float32(w)
}

// Heading returns the unit movement direction for a yaw angle.
func Heading(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Sin(float64(yaw))),
		0,
		float32(math.Cos(float64(yaw))),
	}
}

// EyeMoveSystem moves the camera eye forward or backward along Z.
type EyeMoveSystem struct {
	State        *State
	Input        Input
	Speed        float32
	ScaleByDelta bool
}

func (s *EyeMoveSystem) Execute(f *frame.UpdateFrame) {
	speed := step(s.Speed, f, s.ScaleByDelta)

	var move mgl32.Vec3
	if s.Input.IsHeld(KeyForward) {
		move = mgl32.Vec3{0, 0, speed}
	} else if s.Input.IsHeld(KeyBackward) {
		move = mgl32.Vec3{0, 0, -speed}
	}

	s.State.Camera.Eye = s.State.Camera.Eye.Add(move)
}

// SteerSystem turns the primary node about Y and drives it along its heading.
type SteerSystem struct {
	State        *State
	Input        Input
	RotateSpeed  float32
	MoveSpeed    float32
	ScaleByDelta bool
}

func (s *SteerSystem) Execute(f *frame.UpdateFrame) {
	node := s.State.Nodes.Get(s.State.Primary)
	if node == nil {
		return
	}

	rotate := step(s.RotateSpeed, f, s.ScaleByDelta)
	yaw := node.Rotation.Y()
	if s.Input.IsHeld(KeyRotateRight) {
		yaw += rotate
	} else if s.Input.IsHeld(KeyRotateLeft) {
		yaw -= rotate
	}
	node.Rotation[1] = wrapAngle(yaw)
	s.State.Heading = Heading(node.Rotation.Y())

	speed := step(s.MoveSpeed, f, s.ScaleByDelta)
	var move mgl32.Vec3
	if s.Input.IsHeld(KeyForward) {
		move = s.State.Heading.Mul(speed)
	} else if s.Input.IsHeld(KeyBackward) {
		move = s.State.Heading.Mul(-speed)
	}
	node.Translation = node.Translation.Add(move)
}

// ResetSystem snaps every node back to the origin while the reset key is held.
type ResetSystem struct {
	State *State
	Input Input
}

func (s *ResetSystem) Execute(f *frame.UpdateFrame) {
	for _, node := range s.State.Nodes.All() {
		if s.Input.IsHeld(KeyReset) {
			node.Translation = mgl32.Vec3{}
		}
	}
}

// MatrixSystem recomputes all node world matrices and the camera matrices.
type MatrixSystem struct {
	State *State
}

func (s *MatrixSystem) Execute(f *frame.UpdateFrame) {
	s.State.Nodes.UpdateMatrices()
	s.State.Camera.UpdateMatrix()
}

// DebugTextSystem prints the controlled values for on-screen display.
type DebugTextSystem struct {
	State   *State
	Text    DebugText
	Variant Variant
}

func (s *DebugTextSystem) Execute(f *frame.UpdateFrame) {
	switch s.Variant {
	case VariantFreeCamera:
		eye := s.State.Camera.Eye
		s.Text.SetPos(50, 50)
		s.Text.Printf("eye(%f,%f,%f)", eye.X(), eye.Y(), eye.Z())
	case VariantSteer:
		node := s.State.Nodes.Get(s.State.Primary)
		if node == nil {
			return
		}
		s.Text.SetPos(50, 50)
		s.Text.Printf("translation(%f,%f,%f)", node.Translation.X(), node.Translation.Y(), node.Translation.Z())
		s.Text.SetPos(50, 70)
		s.Text.Printf("rotation(%f,%f,%f)", node.Rotation.X(), node.Rotation.Y(), node.Rotation.Z())
		s.Text.SetPos(50, 90)
		s.Text.Printf("heading(%f,%f,%f)", s.State.Heading.X(), s.State.Heading.Y(), s.State.Heading.Z())
	}
}

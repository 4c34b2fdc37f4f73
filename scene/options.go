package scene

import (
	"github.com/pkg/errors"
)

// Variant selects which controller the scene runs.
type Variant int

const (
	// VariantFreeCamera moves the camera eye along Z; objects stay put.
	VariantFreeCamera Variant = iota
	// VariantSteer turns and drives a parent node carrying one child.
	VariantSteer
)

func (v Variant) String() string {
	switch v {
	case VariantFreeCamera:
		return "free-camera"
	case VariantSteer:
		return "steer"
	default:
		return "unknown"
	}
}

// ParseVariant accepts the names produced by Variant.String.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "free-camera", "a", "A":
		return VariantFreeCamera, nil
	case "steer", "b", "B":
		return VariantSteer, nil
	}
	return 0, errors.Errorf("unknown scene variant %q", name)
}

type Options struct {
	Variant     Variant
	TextureName string
	// Seed drives the randomized initial placement of the free-camera
	// variant. Zero picks a random seed.
	Seed uint64

	EyeSpeed    float32 // eye units per frame
	MoveSpeed   float32 // node units per frame
	RotateSpeed float32 // radians per frame

	AspectRatio float32
	DebugText   bool

	// ScaleByDelta multiplies per-frame steps by DeltaTime*60, so motion
	// keeps its 60 TPS speed at other frame rates.
	ScaleByDelta bool
}

func DefaultOptions() Options {
	return Options{
		Variant:     VariantFreeCamera,
		TextureName: "mario.jpg",
		EyeSpeed:    0.2,
		MoveSpeed:   0.2,
		RotateSpeed: 0.02,
		AspectRatio: 1280.0 / 720.0,
	}
}

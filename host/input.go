package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"
	"github.com/plus3/gamescene/scene"
)

// Input answers scene key queries from the keyboard through a binding table.
type Input struct {
	bindings *intmap.Map[scene.Key, []ebiten.Key]
	pressed  func(ebiten.Key) bool
}

// NewInput parses bindings from logical control names to ebiten key names,
// e.g. "forward": ["W", "ArrowUp"].
func NewInput(bindings map[string][]string) (*Input, error) {
	in := &Input{
		bindings: intmap.New[scene.Key, []ebiten.Key](len(bindings)),
		pressed:  ebiten.IsKeyPressed,
	}

	for name, keyNames := range bindings {
		control, err := scene.ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, keyName := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(keyName)); err != nil {
				return nil, errors.Wrapf(err, "binding %s", name)
			}
			keys = append(keys, k)
		}
		in.bindings.Put(control, keys)
	}
	return in, nil
}

// IsHeld reports whether any key bound to control is down.
func (in *Input) IsHeld(control scene.Key) bool {
	keys, ok := in.bindings.Get(control)
	if !ok {
		return false
	}
	for _, k := range keys {
		if in.pressed(k) {
			return true
		}
	}
	return false
}

// bound returns the ebiten keys bound to control.
func (in *Input) bound(control scene.Key) []ebiten.Key {
	keys, _ := in.bindings.Get(control)
	return keys
}

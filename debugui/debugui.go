// Package debugui provides a Dear ImGui overlay for the scene: a node
// inspector and controller frame statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gamescene/frame"
	"github.com/plus3/gamescene/scene"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes InputState and defers every item's render function to the
// end of the frame.
type System struct {
	Items      []Item
	InputState *InputState
}

func (s *System) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		f.Commands.Defer(item.Render)
	}
}

// CaptureInput hides keyboard input from the scene while Dear ImGui has
// keyboard focus.
type CaptureInput struct {
	Input scene.Input
	State *InputState
}

func (c CaptureInput) IsHeld(key scene.Key) bool {
	if c.State != nil && c.State.WantCaptureKeyboard {
		return false
	}
	return c.Input.IsHeld(key)
}

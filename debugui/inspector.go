package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/gamescene/scene"
	"github.com/plus3/gamescene/transform"
)

// NodeInspector shows the camera and every transform node of a scene.
func NodeInspector(s *scene.Scene) Item {
	return Item{Render: func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 120), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
		if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		state := s.State()
		imgui.Text(fmt.Sprintf("Variant: %s", s.Options().Variant))
		imgui.Text(fmt.Sprintf("Texture: %d", state.Texture))
		imgui.Separator()

		if imgui.TreeNodeStr("Camera") {
			imgui.Text("Eye:    " + formatVec3(state.Camera.Eye))
			imgui.Text("Target: " + formatVec3(state.Camera.Target))
			imgui.TreePop()
		}

		if s.Options().Variant == scene.VariantSteer {
			imgui.Text("Heading: " + formatVec3(state.Heading))
		}

		for h, node := range state.Nodes.All() {
			if imgui.TreeNodeStr(nodeLabel(h, node)) {
				imgui.Text("Scale:       " + formatVec3(node.Scale))
				imgui.Text("Rotation:    " + formatVec3(node.Rotation))
				imgui.Text("Translation: " + formatVec3(node.Translation))
				imgui.Text("World pos:   " + formatVec3(node.Position()))
				imgui.TreePop()
			}
		}

		imgui.End()
	}}
}

func nodeLabel(h transform.Handle, node *transform.Node) string {
	if node.Parent == transform.NoParent {
		return fmt.Sprintf("Node %d", h)
	}
	return fmt.Sprintf("Node %d (parent %d)", h, node.Parent)
}

func formatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
}

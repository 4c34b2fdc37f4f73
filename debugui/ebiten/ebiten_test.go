package ebiten_test

import (
	debugui_ebiten "github.com/plus3/gamescene/debugui/ebiten"
	"github.com/plus3/gamescene/host"
)

var _ host.Overlay = (*debugui_ebiten.ImguiBackend)(nil)

package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/gamescene/scene"
)

type textLine struct {
	x, y int
	text string
}

// DebugText queues lines during Update and prints them with ebiten's debug
// font when the foreground pass draws.
type DebugText struct {
	x, y  int
	lines []textLine
}

func NewDebugText() *DebugText {
	return &DebugText{}
}

func (d *DebugText) SetPos(x, y int) {
	d.x, d.y = x, y
}

func (d *DebugText) Printf(format string, args ...any) {
	d.lines = append(d.lines, textLine{x: d.x, y: d.y, text: fmt.Sprintf(format, args...)})
}

// pending returns the queued text, one entry per Printf.
func (d *DebugText) pending() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.text
	}
	return out
}

// DrawAll prints every queued line onto cmd and clears the queue.
func (d *DebugText) DrawAll(cmd scene.CommandList) {
	if target, ok := cmd.(*ebiten.Image); ok && target != nil {
		for _, l := range d.lines {
			ebitenutil.DebugPrintAt(target, l.text, l.x, l.y)
		}
	}
	d.lines = d.lines[:0]
}

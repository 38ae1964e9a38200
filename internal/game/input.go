package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"labyrinth/internal/observer"
)

type Input struct {
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	primed      bool
	sensitivity float32
}

// NewInput tracks key edges and mouse motion. sensitivity is radians per pixel.
func NewInput(sensitivity float64) *Input {
	return &Input{
		prevKeys:    make(map[glfw.Key]bool),
		sensitivity: float32(sensitivity),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Intent samples the movement keys and the mouse motion since the last call.
// WASD walks, Space rises, Left Shift sinks.
func (in *Input) Intent(window *glfw.Window) observer.Intent {
	it := observer.Intent{
		Forward: axis(window, glfw.KeyW, glfw.KeyS),
		Right:   axis(window, glfw.KeyD, glfw.KeyA),
		Up:      axis(window, glfw.KeySpace, glfw.KeyLeftShift),
	}

	cx, cy := window.GetCursorPos()
	if in.primed {
		it.LookX = observer.StabilizeDelta(cx-in.prevCursorX) * in.sensitivity
		// Screen y grows downward; moving the mouse up looks up.
		it.LookY = observer.StabilizeDelta(in.prevCursorY-cy) * in.sensitivity
	}
	in.prevCursorX, in.prevCursorY = cx, cy
	in.primed = true
	return it
}

// ResetMouse drops the next mouse delta, e.g. after the window regains focus.
func (in *Input) ResetMouse() { in.primed = false }

func axis(window *glfw.Window, pos, neg glfw.Key) float32 {
	var v float32
	if window.GetKey(pos) == glfw.Press {
		v++
	}
	if window.GetKey(neg) == glfw.Press {
		v--
	}
	return v
}

package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/internal/game"
)

var mouseButtons = map[game.MouseButton]rl.MouseButton{
	game.MouseLeft:  rl.MouseButtonLeft,
	game.MouseRight: rl.MouseButtonRight,
}

var keyBindings = map[game.Key][]int32{
	game.KeyRotate:  {rl.KeyR},
	game.KeySkip:    {rl.KeyS, rl.KeyDown},
	game.KeyConfirm: {rl.KeyEnter, rl.KeyKpEnter, rl.KeySpace},
}

// input reads raylib's mouse and keyboard state. The pointer is reported in
// world space through the renderer's camera.
type input struct {
	r *renderer
}

func (in input) Pointer() board.Vec2 {
	return fromScreenSpace(rl.GetScreenToWorld2D(rl.GetMousePosition(), in.r.cam))
}

func (in input) Pressed(b game.MouseButton) bool  { return rl.IsMouseButtonPressed(mouseButtons[b]) }
func (in input) Released(b game.MouseButton) bool { return rl.IsMouseButtonReleased(mouseButtons[b]) }
func (in input) Down(b game.MouseButton) bool     { return rl.IsMouseButtonDown(mouseButtons[b]) }

func (in input) KeyPressed(k game.Key) bool {
	for _, key := range keyBindings[k] {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

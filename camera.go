package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/deathestate/internal/board"
)

// viewHeight is how many world units fit the window height at zoom 1.
const viewHeight = 52

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toScreenSpace flips a y-up world point into raylib's y-down camera space.
func toScreenSpace(v board.Vec2) rl.Vector2 {
	return rl.NewVector2(v.X, -v.Y)
}

func fromScreenSpace(v rl.Vector2) board.Vec2 {
	return board.V(v.X, -v.Y)
}

// Smooth follow (lerp). Set `followSpeed` higher if you want snappier motion.
const followSpeed = float32(10.0)

func updateCamera(cam *rl.Camera2D, target rl.Vector2, dt float32) {
	t := clamp(followSpeed*dt, 0, 1)
	cam.Target = rl.Vector2{
		X: cam.Target.X + (target.X-cam.Target.X)*t,
		Y: cam.Target.Y + (target.Y-cam.Target.Y)*t,
	}
}

// newCamera centres world point center in a width x height window.
func newCamera(width, height int, center board.Vec2) rl.Camera2D {
	return rl.Camera2D{
		Target:   toScreenSpace(center),
		Offset:   rl.NewVector2(float32(width)/2, float32(height)/2),
		Rotation: 0,
		Zoom:     float32(height) / viewHeight,
	}
}

package game

import (
	"time"

	"github.com/Meduza3/deathestate/internal/board"
)

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

// Alpha returns c with its alpha replaced.
func (c Color) Alpha(a float32) Color {
	c.A = a
	return c
}

var (
	White  = RGB(1, 1, 1)
	Black  = RGB(0, 0, 0)
	Red    = RGB(1, 0, 0)
	Yellow = RGB(1, 1, 0)
)

// Align is horizontal text alignment around the anchor position.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Renderer draws in world space. Positions are centres, y is up. SetCamera
// picks the world point shown at the centre of the screen.
type Renderer interface {
	SetCamera(center board.Vec2)
	DrawRect(pos, size board.Vec2, c Color)
	DrawSprite(pos, size board.Vec2, index int, angle float32, tint Color)
	DrawText(text string, pos board.Vec2, size float32, c Color, align Align)
	DrawButton(pos, size board.Vec2, label string, textSize float32, enabled bool)
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Key identifies a keyboard key the game listens for.
type Key int

const (
	KeyRotate Key = iota
	KeySkip
	KeyConfirm
)

// Input is polled once per tick. Pressed and Released are edge triggered.
type Input interface {
	Pointer() board.Vec2
	Pressed(b MouseButton) bool
	Released(b MouseButton) bool
	Down(b MouseButton) bool
	KeyPressed(k Key) bool
}

// Sound is a preloaded effect.
type Sound int

const (
	SoundClick Sound = iota
	SoundHouseRequest
	SoundHouseSkip
	SoundPickUp
	SoundPlaceHouse
	SoundInvalid
)

// Audio plays effects fire and forget.
type Audio interface {
	Play(s Sound)
}

// Clock tells wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real wall clock.
var SystemClock Clock = systemClock{}

type silence struct{}

func (silence) Play(Sound) {}

// Silence is an Audio that plays nothing.
var Silence Audio = silence{}

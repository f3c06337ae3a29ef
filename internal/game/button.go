package game

import (
	"time"

	"github.com/Meduza3/deathestate/internal/anim"
	"github.com/Meduza3/deathestate/internal/board"
)

const (
	buttonThickness = 0.5
	buttonPressTime = 100 * time.Millisecond
)

// Button is a world-space push button. OnPressed runs on release over the
// button that was pressed.
type Button struct {
	Pos       board.Vec2
	Size      board.Vec2
	Label     string
	TextSize  float32
	Enabled   bool
	Visible   bool
	OnPressed func()
	Silent    bool

	press anim.Float
}

func NewButton(pos, size board.Vec2, label string, textSize float32, onPressed func()) *Button {
	return &Button{
		Pos:       pos,
		Size:      size,
		Label:     label,
		TextSize:  textSize,
		Enabled:   true,
		Visible:   true,
		OnPressed: onPressed,
	}
}

// Contains reports whether p is over an enabled, visible button.
func (b *Button) Contains(p board.Vec2) bool {
	if !b.Enabled || !b.Visible {
		return false
	}
	return p.X >= b.Pos.X-b.Size.X/2 && p.Y >= b.Pos.Y-b.Size.Y/2 &&
		p.X < b.Pos.X+b.Size.X/2 && p.Y < b.Pos.Y+b.Size.Y/2
}

// Bounds is the world box of the button face.
func (b *Button) Bounds() board.Rect {
	half := b.Size.Scale(0.5)
	return board.Rect{Min: b.Pos.Sub(half), Max: b.Pos.Add(half)}
}

func (b *Button) fire(now time.Time, audio Audio) {
	if b.OnPressed != nil {
		b.OnPressed()
	}
	b.press.Value = -buttonThickness
	b.press.To(now, 0, buttonPressTime, nil)
	if !b.Silent {
		audio.Play(SoundClick)
	}
}

func (b *Button) Update(now time.Time) { b.press.Update(now) }

func (b *Button) Render(r Renderer) {
	if !b.Visible {
		return
	}
	r.DrawButton(b.Pos.Add(board.V(0, b.press.Value)), b.Size, b.Label, b.TextSize, b.Enabled)
}

// ButtonSet routes pointer presses to a group of buttons. A press captures the
// topmost button under the pointer; the release fires it only when the
// pointer is still over it.
type ButtonSet struct {
	buttons []*Button
	pressed *Button
}

func (s *ButtonSet) Add(b ...*Button) { s.buttons = append(s.buttons, b...) }

// Press captures the button under p and reports whether one was hit.
func (s *ButtonSet) Press(p board.Vec2) bool {
	s.pressed = nil
	for i := len(s.buttons) - 1; i >= 0; i-- {
		if s.buttons[i].Contains(p) {
			s.pressed = s.buttons[i]
			break
		}
	}
	return s.pressed != nil
}

// Release fires the captured button if p is still over it. It reports whether
// a button had been captured.
func (s *ButtonSet) Release(p board.Vec2, now time.Time, audio Audio) bool {
	if s.pressed == nil {
		return false
	}
	b := s.pressed
	s.pressed = nil
	if b.Contains(p) {
		b.fire(now, audio)
	}
	return true
}

// Handle feeds one tick of left-button input into the set. It reports whether
// the press this tick landed on a button.
func (s *ButtonSet) Handle(in Input, now time.Time, audio Audio) bool {
	hit := false
	if in.Pressed(MouseLeft) {
		hit = s.Press(in.Pointer())
	}
	if in.Released(MouseLeft) {
		s.Release(in.Pointer(), now, audio)
	}
	return hit
}

func (s *ButtonSet) Update(now time.Time) {
	for _, b := range s.buttons {
		b.Update(now)
	}
}

func (s *ButtonSet) Render(r Renderer) {
	for _, b := range s.buttons {
		b.Render(r)
	}
}

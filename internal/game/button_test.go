package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Meduza3/deathestate/internal/board"
)

func TestButtonSetPressRelease(t *testing.T) {
	now := time.UnixMilli(0)
	audio := &fakeAudio{}
	fired := map[string]int{}
	a := NewButton(board.V(0, 0), board.V(4, 2), "a", 1, func() { fired["a"]++ })
	b := NewButton(board.V(10, 0), board.V(4, 2), "b", 1, func() { fired["b"]++ })
	var set ButtonSet
	set.Add(a, b)

	tests := []struct {
		name      string
		press     board.Vec2
		release   board.Vec2
		wantHit   bool
		wantFired map[string]int
	}{
		{"click a", board.V(0, 0), board.V(1, 0.5), true, map[string]int{"a": 1}},
		{"slide off a", board.V(0, 0), board.V(10, 0), true, map[string]int{}},
		{"miss", board.V(5, 0), board.V(5, 0), false, map[string]int{}},
		{"click b", board.V(11.9, -0.9), board.V(10, 0), true, map[string]int{"b": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := range fired {
				delete(fired, k)
			}
			assert.Equal(t, tt.wantHit, set.Press(tt.press))
			assert.Equal(t, tt.wantHit, set.Release(tt.release, now, audio))
			assert.Equal(t, tt.wantFired, fired)
		})
	}
	assert.Equal(t, 2, audio.count(SoundClick))
}

func TestDisabledButtonIgnoresPointer(t *testing.T) {
	fired := false
	btn := NewButton(board.V(0, 0), board.V(4, 2), "x", 1, func() { fired = true })
	btn.Enabled = false
	var set ButtonSet
	set.Add(btn)

	assert.False(t, set.Press(board.V(0, 0)))
	assert.False(t, set.Release(board.V(0, 0), time.UnixMilli(0), Silence))
	assert.False(t, fired)

	btn.Enabled = true
	btn.Visible = false
	assert.False(t, btn.Contains(board.V(0, 0)))
}

func TestButtonPressAnimation(t *testing.T) {
	t0 := time.UnixMilli(0)
	r := &fakeRenderer{}
	r.reset()
	btn := NewButton(board.V(0, 0), board.V(4, 2), "x", 1, nil)
	btn.Silent = true
	var set ButtonSet
	set.Add(btn)

	audio := &fakeAudio{}
	set.Press(board.V(0, 0))
	set.Release(board.V(0, 0), t0, audio)
	assert.Empty(t, audio.played)
	assert.Equal(t, float32(-buttonThickness), btn.press.Value)

	set.Update(t0.Add(buttonPressTime))
	assert.Zero(t, btn.press.Value)
	set.Render(r)
	assert.Contains(t, r.buttons, "x")
}

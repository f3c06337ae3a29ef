package game

import (
	"math/rand"
	"time"

	"github.com/Meduza3/deathestate/internal/anim"
	"github.com/Meduza3/deathestate/internal/board"
)

const thankTextDuration = 1500 * time.Millisecond

var (
	requestTexts = []string{"Can you build me this?", "I need a place to haunt.", "Somewhere quiet, please."}
	thankTexts   = []string{"Thank you!", "Lovely.", "Perfect!"}
	skippedTexts = []string{"Aww...", "Fine then.", "Next!"}
)

func pick(rng *rand.Rand, texts []string) string {
	return texts[rng.Intn(len(texts))]
}

// GhostActivity names the animation channel a ghost is busy with.
type GhostActivity int

const (
	GhostIdle GhostActivity = iota
	GhostMoving
	GhostFading
	GhostResizing
)

// Ghost is the client asking for houses. Position, size and opacity animate
// independently.
type Ghost struct {
	Pos   anim.Vec
	Size  anim.Vec
	Alpha anim.Float
	Text  string

	textTimer anim.Tween
}

func NewGhost(pos board.Vec2, size float32) *Ghost {
	g := &Ghost{}
	g.Pos.Value = pos
	g.Size.Value = board.V(size, size)
	g.Alpha.Value = 1
	return g
}

// MoveTo glides to pos at speed world units per second.
func (g *Ghost) MoveTo(now time.Time, pos board.Vec2, speed float32, done func()) {
	g.Pos.MoveAt(now, pos, speed, done)
}

func (g *Ghost) FadeTo(now time.Time, alpha float32, d time.Duration, done func()) {
	g.Alpha.To(now, alpha, d, done)
}

func (g *Ghost) ResizeTo(now time.Time, size float32, d time.Duration, done func()) {
	g.Size.To(now, board.V(size, size), d, done)
}

// Activity reports the first busy channel in move, fade, resize order.
func (g *Ghost) Activity() GhostActivity {
	switch {
	case g.Pos.Running():
		return GhostMoving
	case g.Alpha.Running():
		return GhostFading
	case g.Size.Running():
		return GhostResizing
	}
	return GhostIdle
}

func (g *Ghost) ShowRequest(rng *rand.Rand) {
	g.textTimer.Stop()
	g.Text = pick(rng, requestTexts)
}

// ShowThanks shows a thank-you line that clears itself after a moment.
func (g *Ghost) ShowThanks(now time.Time, rng *rand.Rand) {
	g.Text = pick(rng, thankTexts)
	g.textTimer.Start(now, thankTextDuration, func() { g.Text = "" })
}

func (g *Ghost) ShowSkipped(rng *rand.Rand) {
	g.textTimer.Stop()
	g.Text = pick(rng, skippedTexts)
}

func (g *Ghost) Update(now time.Time) {
	g.Pos.Update(now)
	g.Alpha.Update(now)
	g.Size.Update(now)
	g.textTimer.Update(now)
}

func (g *Ghost) Render(r Renderer) {
	tint := White.Alpha(g.Alpha.Value)
	pos, size := g.Pos.Value, g.Size.Value
	r.DrawSprite(pos, size, board.SpriteGhost, 0, tint)
	if g.Text != "" {
		r.DrawText(g.Text, pos.Add(board.V(0, size.Y/2+1)), 1, tint, AlignCenter)
	}
}

package game

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/internal/config"
	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

type textCall struct {
	text  string
	pos   board.Vec2
	color Color
	align Align
}

type fakeRenderer struct {
	camera  board.Vec2
	rects   int
	sprites []int
	texts   []textCall
	buttons map[string]bool
}

func (f *fakeRenderer) reset() {
	f.rects = 0
	f.sprites = nil
	f.texts = nil
	f.buttons = map[string]bool{}
}

func (f *fakeRenderer) SetCamera(center board.Vec2) { f.camera = center }

func (f *fakeRenderer) DrawRect(_, _ board.Vec2, _ Color) { f.rects++ }

func (f *fakeRenderer) DrawSprite(_, _ board.Vec2, i int, _ float32, _ Color) {
	f.sprites = append(f.sprites, i)
}

func (f *fakeRenderer) DrawText(text string, pos board.Vec2, _ float32, c Color, align Align) {
	f.texts = append(f.texts, textCall{text, pos, c, align})
}

func (f *fakeRenderer) DrawButton(_, _ board.Vec2, label string, _ float32, enabled bool) {
	f.buttons[label] = enabled
}

func (f *fakeRenderer) hasText(text string) bool {
	for _, t := range f.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

type fakeInput struct {
	ptr      board.Vec2
	pressed  map[MouseButton]bool
	released map[MouseButton]bool
	down     map[MouseButton]bool
	keys     map[Key]bool
}

func newFakeInput() *fakeInput {
	f := &fakeInput{down: map[MouseButton]bool{}}
	f.clearEdges()
	return f
}

func (f *fakeInput) clearEdges() {
	f.pressed = map[MouseButton]bool{}
	f.released = map[MouseButton]bool{}
	f.keys = map[Key]bool{}
}

func (f *fakeInput) Pointer() board.Vec2         { return f.ptr }
func (f *fakeInput) Pressed(b MouseButton) bool  { return f.pressed[b] }
func (f *fakeInput) Released(b MouseButton) bool { return f.released[b] }
func (f *fakeInput) Down(b MouseButton) bool     { return f.down[b] }
func (f *fakeInput) KeyPressed(k Key) bool       { return f.keys[k] }

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeAudio struct{ played []Sound }

func (f *fakeAudio) Play(s Sound) { f.played = append(f.played, s) }

func (f *fakeAudio) count(s Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

// harness drives a Machine one tick at a time with scripted input.
type harness struct {
	m     *Machine
	in    *fakeInput
	clock *fakeClock
	audio *fakeAudio
	r     *fakeRenderer
	store *leaderboard.MemStore
}

func newHarness(cfg config.Config) *harness {
	h := &harness{
		in:    newFakeInput(),
		clock: &fakeClock{now: time.UnixMilli(1_700_000_000_000)},
		audio: &fakeAudio{},
		r:     &fakeRenderer{},
		store: leaderboard.NewMemStore(),
	}
	h.r.reset()
	h.m = NewMachine(Env{
		Renderer: h.r,
		Input:    h.in,
		Audio:    h.audio,
		Clock:    h.clock,
		Scores:   leaderboard.New(h.store, leaderboard.Key),
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(7)),
	})
	return h
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 7
	return cfg
}

func (h *harness) ctx() *Context { return h.m.Context() }

func (h *harness) tick() {
	h.r.reset()
	h.m.Update()
	h.m.Render()
	h.in.clearEdges()
}

func (h *harness) press(pos board.Vec2) {
	h.in.ptr = pos
	h.in.pressed[MouseLeft] = true
	h.in.down[MouseLeft] = true
	h.tick()
}

func (h *harness) move(pos board.Vec2) {
	h.in.ptr = pos
	h.tick()
}

func (h *harness) release(pos board.Vec2) {
	h.in.ptr = pos
	h.in.released[MouseLeft] = true
	h.in.down[MouseLeft] = false
	h.tick()
}

func (h *harness) click(pos board.Vec2) {
	h.press(pos)
	h.release(pos)
}

func (h *harness) drag(from, to board.Vec2) {
	h.press(from)
	h.move(to)
	h.release(to)
}

func (h *harness) key(k Key) {
	h.in.keys[k] = true
	h.tick()
}

func (h *harness) rightClick() {
	h.in.released[MouseRight] = true
	h.tick()
}

func (h *harness) advance(d time.Duration) {
	h.clock.now = h.clock.now.Add(d)
	h.tick()
}

// tileAt is the world centre of grid tile (x, y) in the current round.
func (h *harness) tileAt(x, y int) board.Vec2 {
	return h.ctx().Round.Grid.WorldPos(board.Coord{X: x, Y: y})
}

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meduza3/deathestate/internal/board"
)

type recordingPhase struct {
	inits   []Payload
	updates int
	renders int
}

func (p *recordingPhase) Init(_ *Context, pl Payload) { p.inits = append(p.inits, pl) }
func (p *recordingPhase) Update(*Context)             { p.updates++ }
func (p *recordingPhase) Render(*Context)             { p.renders++ }

func TestMachineStartsIdle(t *testing.T) {
	h := newHarness(testConfig())
	assert.Equal(t, Idle, h.m.State())

	h.tick()
	assert.Zero(t, h.r.rects)
	assert.Empty(t, h.r.texts)
	assert.Nil(t, h.ctx().Round)
}

func TestMachineSetRunsInitWithPayload(t *testing.T) {
	h := newHarness(testConfig())
	rec := &recordingPhase{}
	h.m.Register(Leaderboard, rec)

	want := Payload{Score: 3, RoadCount: 4, TotalMaxScore: 225, Timestamp: time.UnixMilli(9)}
	h.m.Set(Leaderboard, want)
	h.tick()
	h.tick()

	assert.Equal(t, Leaderboard, h.m.State())
	assert.Equal(t, []Payload{want}, rec.inits)
	assert.Equal(t, 2, rec.updates)
	assert.Equal(t, 2, rec.renders)
}

func TestMachineIgnoresUnknownState(t *testing.T) {
	h := newHarness(testConfig())
	h.m.Set(State(42), Payload{})
	assert.Equal(t, Idle, h.m.State())
	assert.Equal(t, "state(42)", State(42).String())
}

func TestMenuStartsRound(t *testing.T) {
	h := newHarness(testConfig())
	h.m.Set(MainMenu, Payload{})
	h.tick()
	assert.True(t, h.r.hasText("Death Estate"))
	assert.True(t, h.r.buttons["Start"])

	menu := h.m.phases[MainMenu].(*menuPhase)
	first := menu.house
	h.advance(menuHouseEvery)
	assert.NotSame(t, first, menu.house, "sample house respawns every second")

	h.click(board.V(0, -10))
	require.Equal(t, PlaceRoads, h.m.State())
	assert.Equal(t, 1, h.audio.count(SoundClick))

	round := h.ctx().Round
	require.NotNil(t, round)
	assert.Len(t, round.ID, 36)
	assert.Equal(t, 15, round.Grid.Width)
	assert.Equal(t, board.V(14, 14), h.r.camera)
}

func TestMenuConfirmKey(t *testing.T) {
	h := newHarness(testConfig())
	h.m.Set(MainMenu, Payload{})
	h.key(KeyConfirm)
	assert.Equal(t, PlaceRoads, h.m.State())
}

func TestButtonReleasedElsewhereDoesNotFire(t *testing.T) {
	h := newHarness(testConfig())
	h.m.Set(MainMenu, Payload{})
	h.press(board.V(0, -10))
	h.release(board.V(10, 10))
	assert.Equal(t, MainMenu, h.m.State())
	assert.Zero(t, h.audio.count(SoundClick))
}

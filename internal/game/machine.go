// Package game runs the Death Estate phase machine: a main menu, road drawing,
// house placement, game over and the high score table. It draws and reads
// input only through the Renderer, Input, Audio and Clock interfaces.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/internal/config"
	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

type State int

const (
	Idle State = iota
	MainMenu
	PlaceRoads
	GhostIncoming
	PlaceHouses
	GameOver
	Leaderboard
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MainMenu:
		return "main-menu"
	case PlaceRoads:
		return "place-roads"
	case GhostIncoming:
		return "ghost-incoming"
	case PlaceHouses:
		return "place-houses"
	case GameOver:
		return "game-over"
	case Leaderboard:
		return "leaderboard"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Payload carries the result of a round into the next phase.
type Payload struct {
	Score         int
	RoadCount     int
	TotalMaxScore int
	Timestamp     time.Time
}

// Phase is one controller of the machine. Init runs on every entry.
type Phase interface {
	Init(c *Context, p Payload)
	Update(c *Context)
	Render(c *Context)
}

// Env holds the collaborators that live for the whole process.
type Env struct {
	Renderer Renderer
	Input    Input
	Audio    Audio
	Clock    Clock
	Scores   *leaderboard.Board
	Config   config.Config
	Rand     *rand.Rand
}

// Round is the state of one game from road drawing to game over.
type Round struct {
	ID        string
	Grid      *board.Grid
	House     *board.House
	Fittable  *board.House
	SkipsLeft int
	Ghost     *Ghost
	Started   time.Time
}

// Context is handed to every phase call.
type Context struct {
	Env
	Round *Round

	machine *Machine
}

func (c *Context) Now() time.Time { return c.Clock.Now() }

// Goto switches the machine to s. The current phase finishes its tick first.
func (c *Context) Goto(s State, p Payload) { c.machine.Set(s, p) }

// Machine owns one Phase per State and forwards ticks to the active one.
type Machine struct {
	ctx    *Context
	phases map[State]Phase
	state  State
	active Phase
}

// NewMachine wires the default phase set. The machine starts Idle.
func NewMachine(env Env) *Machine {
	if env.Audio == nil {
		env.Audio = Silence
	}
	if env.Clock == nil {
		env.Clock = SystemClock
	}
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewSource(env.Config.Seed))
	}
	if env.Scores == nil {
		env.Scores = leaderboard.New(leaderboard.NewMemStore(), leaderboard.Key)
	}
	houses := &housesPhase{}
	m := &Machine{
		phases: map[State]Phase{
			Idle:          idlePhase{},
			MainMenu:      &menuPhase{},
			PlaceRoads:    &roadsPhase{},
			GhostIncoming: &ghostPhase{},
			PlaceHouses:   houses,
			GameOver:      &gameOverPhase{houses: houses},
			Leaderboard:   &leaderboardPhase{},
		},
	}
	m.ctx = &Context{Env: env, machine: m}
	m.active = m.phases[Idle]
	return m
}

// Register replaces the phase for s.
func (m *Machine) Register(s State, p Phase) { m.phases[s] = p }

func (m *Machine) State() State { return m.state }

func (m *Machine) Context() *Context { return m.ctx }

// Set activates the phase for next and runs its Init with p.
func (m *Machine) Set(next State, p Payload) {
	phase, ok := m.phases[next]
	if !ok {
		logger.Log.WithField("state", next).Error("no phase registered")
		return
	}
	fields := logrus.Fields{"from": m.state.String(), "to": next.String()}
	if m.ctx.Round != nil {
		fields["round"] = m.ctx.Round.ID
	}
	logger.Log.WithFields(fields).Info("phase change")

	m.state = next
	m.active = phase
	phase.Init(m.ctx, p)
}

func (m *Machine) Update() { m.active.Update(m.ctx) }

func (m *Machine) Render() { m.active.Render(m.ctx) }

type idlePhase struct{}

func (idlePhase) Init(*Context, Payload) {}
func (idlePhase) Update(*Context)        {}
func (idlePhase) Render(*Context)        {}

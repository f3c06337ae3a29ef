package game

import (
	"math"
	"time"

	"github.com/Meduza3/deathestate/internal/anim"
	"github.com/Meduza3/deathestate/internal/board"
)

const (
	menuHouseEvery = time.Second
	bounceTime     = 200 * time.Millisecond
)

var (
	menuGhostPos = board.V(5, 0)
	menuHousePos = board.V(-5, 0)
	titlePos     = board.V(0, 10)
)

type menuPhase struct {
	buttons ButtonSet
	start   bool

	ghost     *Ghost
	house     *board.House
	bounce    anim.Float
	started   time.Time
	lastHouse time.Time
}

func (p *menuPhase) Init(c *Context, _ Payload) {
	p.buttons = ButtonSet{}
	p.start = false
	p.buttons.Add(NewButton(board.V(0, -10), board.V(4, 2.5), "Start", textSize, func() { p.start = true }))

	p.ghost = NewGhost(menuGhostPos, 10)
	p.started = c.Now()
	p.spawnHouse(c)
}

// spawnHouse puts a fresh sample house centred on menuHousePos.
func (p *menuPhase) spawnHouse(c *Context) {
	h := board.NewHouse(c.Rand, board.Vec2{}, c.Config.HouseMaxExtent)
	h.Pos = menuHousePos.Add(h.Pos.Sub(h.WorldBounds().Center()))
	p.house = h
	p.lastHouse = c.Now()
	p.bounce.Value = 0.6
	p.bounce.To(p.lastHouse, 1, bounceTime, nil)
}

func (p *menuPhase) Update(c *Context) {
	now := c.Now()
	t := now.Sub(p.started).Seconds()
	wave := func(period float64) float32 {
		return float32(math.Sin(t * 2 * math.Pi / period))
	}
	p.ghost.Alpha.Value = 1 - (wave(0.5)/2+0.5)*0.2
	p.ghost.Pos.Value = menuGhostPos.Add(board.V(wave(1.3), wave(2.1)))

	if now.Sub(p.lastHouse) >= menuHouseEvery {
		p.spawnHouse(c)
	}
	p.bounce.Update(now)

	p.buttons.Handle(c.Input, now, c.Audio)
	if c.Input.KeyPressed(KeyConfirm) {
		p.start = true
	}
	p.buttons.Update(now)

	if p.start {
		p.start = false
		c.Goto(PlaceRoads, Payload{})
	}
}

func (p *menuPhase) Render(c *Context) {
	r := c.Renderer
	r.SetCamera(menuCenter)
	renderHouse(r, p.house, p.bounce.Value)
	p.ghost.Render(r)

	pulse := float32(math.Sin(c.Now().Sub(p.started).Seconds()*2*math.Pi/3)/2 + 0.5)
	r.DrawText("Death Estate", titlePos, 5+0.4*pulse, Red, AlignCenter)
	p.buttons.Render(r)
}

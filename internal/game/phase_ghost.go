package game

import "time"

const (
	incomingText  = "A client approaches..."
	ghostFadeTime = 500 * time.Millisecond
)

// ghostPhase walks the client in from the side before houses are placed.
type ghostPhase struct {
	lay     layout
	arrived bool
}

func (p *ghostPhase) Init(c *Context, _ Payload) {
	p.lay = newLayout(c.Round.Grid)
	p.arrived = false

	now := c.Now()
	g := NewGhost(p.lay.ghostOffscreen, ghostSize)
	g.Alpha.Value = 0
	g.FadeTo(now, 1, ghostFadeTime, nil)
	g.MoveTo(now, p.lay.ghostRequest, ghostSpeed, func() { p.arrived = true })
	c.Round.Ghost = g
}

func (p *ghostPhase) Update(c *Context) {
	c.Round.Ghost.Update(c.Now())
	if !p.arrived {
		return
	}
	c.Round.Ghost.ShowRequest(c.Rand)
	c.Audio.Play(SoundHouseRequest)
	c.Goto(PlaceHouses, Payload{})
}

func (p *ghostPhase) Render(c *Context) {
	r := c.Renderer
	r.SetCamera(p.lay.center)
	renderGrid(r, c.Round.Grid)
	c.Round.Ghost.Render(r)
	r.DrawText(incomingText, p.lay.topText, textSize, White, AlignCenter)
}

package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Meduza3/deathestate/internal/anim"
	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/pkg/logger"
)

const (
	placeHouseText = "Place houses! Must touch a road, not overlap\n" +
		"other houses, and be within the grid"
	rightClickText = "right-click\nworks too"
)

type housesPhase struct {
	lay       layout
	droppable board.Rect
	deadZone  board.Rect

	buttons ButtonSet
	rotate  *Button
	skip    *Button

	dragging   bool
	dragAnchor board.Vec2
	origPos    board.Vec2
	bounce     anim.Float
}

func (p *housesPhase) Init(c *Context, _ Payload) {
	g := c.Round.Grid
	p.lay = newLayout(g)
	p.droppable = p.lay.droppable(g)
	p.deadZone = p.lay.deadZone()
	p.dragging = false

	p.rotate = NewButton(p.lay.rotate, buttonSize, "Rotate", 1.2, func() { p.rotateHouse(c) })
	p.skip = NewButton(p.lay.skip, buttonSize, "Skip", textSize, func() { p.skipHouse(c) })
	p.skip.Enabled = c.Round.SkipsLeft > 0
	p.buttons = ButtonSet{}
	p.buttons.Add(p.rotate, p.skip)

	if c.Round.Ghost == nil {
		c.Round.Ghost = NewGhost(p.lay.ghostRequest, ghostSize)
	}
	g.CheckAvailableSpaces()
	p.spawnHouse(c)
}

// spawnHouse hands the player the next house and looks for a spot it fits.
func (p *housesPhase) spawnHouse(c *Context) {
	r := c.Round
	h := board.NewHouse(c.Rand, p.lay.spawn, c.Config.HouseMaxExtent)
	h.Pos.X -= float32((h.Width()-1)/2) * board.TileSize
	r.House = h
	r.Fittable = r.Grid.HouseFitsSomewhere(h)

	now := c.Now()
	p.bounce.Value = 0.6
	p.bounce.To(now, 1, bounceTime, nil)

	logger.Log.WithFields(logrus.Fields{
		"round":    r.ID,
		"size":     h.Size(),
		"fittable": r.Fittable != nil,
	}).Debug("house spawned")
}

func (p *housesPhase) rotateHouse(c *Context) {
	c.Round.House.Rotate(1)
}

func (p *housesPhase) skipHouse(c *Context) {
	r := c.Round
	if r.SkipsLeft > 0 {
		r.SkipsLeft--
		r.Ghost.ShowSkipped(c.Rand)
		c.Audio.Play(SoundHouseSkip)
		p.spawnHouse(c)
	}
	if r.SkipsLeft <= 0 {
		p.skip.Enabled = false
	}
}

func (p *housesPhase) Update(c *Context) {
	in, now := c.Input, c.Now()
	ptr := in.Pointer()

	if in.Released(MouseRight) || in.KeyPressed(KeyRotate) {
		p.rotateHouse(c)
	}
	if in.KeyPressed(KeySkip) && p.skip.Enabled {
		p.skipHouse(c)
	}

	if in.Pressed(MouseLeft) && !p.buttons.Press(ptr) && c.Round.House.IsClicked(ptr) {
		h := c.Round.House
		h.State = board.Placing
		p.dragging = true
		p.origPos = h.Pos
		p.dragAnchor = ptr
		c.Audio.Play(SoundPickUp)
	}
	if in.Released(MouseLeft) {
		p.buttons.Release(ptr, now, c.Audio)
		if p.dragging {
			p.drop(c)
		}
		p.dragging = false
	}
	if in.Down(MouseLeft) && p.dragging {
		p.drag(c.Round.House, ptr)
	}

	p.buttons.Update(now)
	p.bounce.Update(now)
	c.Round.Ghost.Update(now)

	if over(c.Round) {
		c.Goto(GameOver, Payload{})
	}
}

// over reports whether the round cannot continue.
func over(r *Round) bool {
	return !r.Grid.HasAvailableSpaces || (r.Fittable == nil && r.SkipsLeft <= 0)
}

// drag follows the pointer, keeping the house inside the droppable area.
func (p *housesPhase) drag(h *board.House, ptr board.Vec2) {
	h.Pos = p.origPos.Add(ptr.Sub(p.dragAnchor))
	b, d := h.WorldBounds(), p.droppable
	if b.Min.X < d.Min.X {
		h.Pos.X += d.Min.X - b.Min.X
	} else if b.Max.X > d.Max.X {
		h.Pos.X -= b.Max.X - d.Max.X
	}
	if b.Min.Y < d.Min.Y {
		h.Pos.Y += d.Min.Y - b.Min.Y
	} else if b.Max.Y > d.Max.Y {
		h.Pos.Y -= b.Max.Y - d.Max.Y
	}
}

func (p *housesPhase) drop(c *Context) {
	r := c.Round
	g, h := r.Grid, r.House
	h.Pos = h.Pos.Sub(g.Pos).Snap().Add(g.Pos)
	if p.deadZone.Contains(h.WorldBounds().Center()) {
		h.Pos = p.origPos
	}

	if !g.HouseCanFit(h) || !g.HouseIsTouchingRoad(h) {
		h.State = board.Invalid
		c.Audio.Play(SoundInvalid)
		return
	}
	g.AddHouse(h)
	g.CheckAvailableSpaces()
	r.Ghost.ShowThanks(c.Now(), c.Rand)
	c.Audio.Play(SoundPlaceHouse)
	logger.Log.WithFields(logrus.Fields{
		"round":  r.ID,
		"origin": g.HouseOrigin(h),
		"tiles":  g.Counts().HouseTiles,
	}).Debug("house placed")
	p.spawnHouse(c)
}

func (p *housesPhase) Render(c *Context) {
	p.render(c, placeHouseText, board.Vec2{}, 1)
}

// render draws the round with the given headline. GameOver reuses it with the
// HUD faded.
func (p *housesPhase) render(c *Context, headline string, offset board.Vec2, hudAlpha float32) {
	r, round := c.Renderer, c.Round
	r.SetCamera(p.lay.center)
	renderGrid(r, round.Grid)
	renderHouse(r, round.House, p.bounce.Value)
	round.Ghost.Render(r)

	hud := White.Alpha(hudAlpha)
	r.DrawText(headline, p.lay.topText.Add(offset), textSize, White, AlignCenter)
	r.DrawText(rightClickText, p.lay.rotate.Add(board.V(3, 0.5)), 1, hud, AlignLeft)
	r.DrawText(skipsText(round.SkipsLeft), p.lay.skip.Add(board.V(3, 0)), textSize, hud, AlignLeft)
	p.buttons.Render(r)
}

func skipsText(n int) string {
	return fmt.Sprintf("Skips left: %d", n)
}

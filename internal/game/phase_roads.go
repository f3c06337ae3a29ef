package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/pkg/logger"
)

const (
	placeRoadsText = "Make roads by clicking and dragging lines\n" +
		"on the grid. Delete by clicking and dragging\n" +
		"on existing roads"
	requiredRoadsText = "All roads must connect to an edge of the grid"
)

type roadsPhase struct {
	lay     layout
	buttons ButtonSet
	done    *Button
	finish  bool

	drawing  bool
	start    board.Coord
	lineType board.TileType
}

// Init starts a new round on an empty grid.
func (p *roadsPhase) Init(c *Context, _ Payload) {
	cfg := c.Config
	round := &Round{
		ID:        uuid.NewString(),
		Grid:      board.NewGrid(cfg.GridWidth, cfg.GridHeight),
		SkipsLeft: cfg.Skips,
		Started:   c.Now(),
	}
	c.Round = round
	logger.Log.WithFields(logrus.Fields{
		"round":  round.ID,
		"width":  cfg.GridWidth,
		"height": cfg.GridHeight,
	}).Info("round started")

	p.lay = newLayout(round.Grid)
	p.drawing = false
	p.finish = false
	p.done = NewButton(p.lay.done, buttonSize, "Done", textSize, func() {
		if c.Round.Grid.AllRoadsConnected {
			p.finish = true
		}
	})
	p.done.Enabled = false
	p.buttons = ButtonSet{}
	p.buttons.Add(p.done)
}

func (p *roadsPhase) Update(c *Context) {
	in, g, now := c.Input, c.Round.Grid, c.Now()
	ptr := in.Pointer()

	if in.Pressed(MouseLeft) && !p.buttons.Press(ptr) {
		if start, ok := g.CoordsFromPos(ptr, false); ok {
			g.CreateSnapshot()
			p.drawing, p.start = true, start
			if g.Tile(start.X, start.Y).Type.IsRoad() {
				p.lineType = board.EphemeralDelete
			} else {
				p.lineType = board.EphemeralRoad
			}
		}
	}
	if in.Released(MouseLeft) {
		p.buttons.Release(ptr, now, c.Audio)
		if p.drawing {
			p.commit(g, ptr)
		}
		p.drawing = false
	}
	if in.Down(MouseLeft) && p.drawing {
		g.ResetToSnapshot()
		end, _ := g.CoordsFromPos(ptr, true)
		g.SetTileLine(p.start, end, p.lineType)
	}
	if in.KeyPressed(KeyConfirm) && p.done.Enabled {
		p.finish = true
	}
	p.buttons.Update(now)

	if p.finish {
		p.finish = false
		c.Goto(GhostIncoming, Payload{})
	}
}

// commit replaces the preview with real roads, or erases them, and re-checks
// connectivity.
func (p *roadsPhase) commit(g *board.Grid, ptr board.Vec2) {
	g.ResetToSnapshot()
	end, _ := g.CoordsFromPos(ptr, true)
	t := board.Road
	if p.lineType == board.EphemeralDelete {
		t = board.None
	}
	g.SetTileLine(p.start, end, t)
	g.CheckRoadConnection()
	g.RecalculateDirections()
	p.done.Enabled = g.AllRoadsConnected

	logger.Log.WithFields(logrus.Fields{
		"roads":        g.Counts().Roads,
		"disconnected": g.DisconnectedCount(),
		"connected":    g.AllRoadsConnected,
	}).Debug("roads changed")
}

func (p *roadsPhase) Render(c *Context) {
	r, g := c.Renderer, c.Round.Grid
	r.SetCamera(p.lay.center)
	renderGrid(r, g)
	r.DrawText(placeRoadsText, p.lay.topText, textSize, White, AlignCenter)
	if !g.AllRoadsConnected {
		r.DrawText(requiredRoadsText, p.lay.bottomText, textSize, White, AlignCenter)
	}
	p.buttons.Render(r)
}

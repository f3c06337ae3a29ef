package game

import "github.com/Meduza3/deathestate/internal/board"

const (
	textSize      = 1.5
	ghostSize     = 6
	ghostSpeed    = 20
	droppableGrow = 4 * board.TileSize
)

var (
	buttonSize = board.V(5, 3)
	menuCenter = board.V(0, 0)
)

// layout places the in-round HUD around a grid.
type layout struct {
	center     board.Vec2
	topText    board.Vec2
	bottomText board.Vec2
	done       board.Vec2
	rotate     board.Vec2
	skip       board.Vec2
	spawn      board.Vec2

	ghostRequest   board.Vec2
	ghostOffscreen board.Vec2
}

func newLayout(g *board.Grid) layout {
	bounds := g.WorldBounds()
	center := bounds.Center()
	l := layout{
		center:  center,
		topText: board.V(center.X, bounds.Max.Y+5),
		done:    board.V(center.X, bounds.Min.Y-3),
		rotate:  board.V(bounds.Min.X+1, bounds.Min.Y-4),
		spawn:   g.WorldPos(board.Coord{X: g.Width / 2, Y: -4}),
	}
	l.bottomText = l.done.Add(board.V(0, -4))
	l.skip = l.rotate.Add(board.V(0, -4))
	l.ghostRequest = board.V(bounds.Max.X-ghostSize/2, l.spawn.Y)
	l.ghostOffscreen = l.ghostRequest.Add(board.V(40, 0))
	return l
}

// droppable is where a dragged house may go.
func (l layout) droppable(g *board.Grid) board.Rect {
	return g.WorldBounds().Grow(droppableGrow)
}

// deadZone covers the Rotate and Skip buttons. A house dropped with its
// centre in here goes back to where the drag started.
func (l layout) deadZone() board.Rect {
	half := buttonSize.Scale(0.5)
	pad := board.V(board.TileSize/2, board.TileSize/2)
	return board.Rect{
		Min: l.skip.Sub(half).Add(pad),
		Max: l.rotate.Add(half).Add(pad),
	}
}

package game

import "github.com/Meduza3/deathestate/internal/board"

var (
	tileColors = map[board.TileType]Color{
		board.Road:             RGB(0.6, 0.6, 0.6),
		board.EphemeralRoad:    RGB(0.5, 0.5, 0.5),
		board.EphemeralDelete:  RGB(0.8, 0.3, 0.3),
		board.DisconnectedRoad: Red,
	}
	baseColors = [2]Color{
		RGB(0.278, 0.176, 0.235),
		RGB(0.223, 0.125, 0.183),
	}
	houseColors = map[board.HouseState]Color{
		board.Placing:  White,
		board.Placed:   RGB(0.9, 0.9, 0.9),
		board.Invalid:  Red,
		board.Fittable: RGB(0.5, 1, 0.5).Alpha(0.5),
	}
	wallColor = RGB(0.35, 0.3, 0.33)
)

const wallThickness = 0.2

func renderGrid(r Renderer, g *board.Grid) {
	tileSize := board.V(board.TileSize, board.TileSize)
	for _, t := range g.Tiles() {
		pos := g.WorldPos(t.Coord())
		if t.Type == board.Road {
			if index, angle, ok := board.RoadSprite(t.DirectionFlags); ok {
				r.DrawSprite(pos, tileSize, index, angle, White)
				continue
			}
		}
		c, ok := tileColors[t.Type]
		if !ok {
			c = baseColors[(t.X+t.Y)%2]
		}
		r.DrawRect(pos, tileSize, c)
	}
	for _, h := range g.Houses {
		renderHouse(r, h, 1)
	}
}

// renderHouse draws h around its anchor, scaled about the shape centre.
func renderHouse(r Renderer, h *board.House, scale float32) {
	c, ok := houseColors[h.State]
	if !ok {
		c = Red
	}
	center := h.WorldBounds().Center()
	cell := board.TileSize * scale
	h.EachOccupied(func(at board.Coord) {
		pos := center.Add(h.CellPos(at).Sub(center).Scale(scale))
		if h.Variant > 0 {
			r.DrawSprite(pos, board.V(cell, cell), board.SpriteHouse+h.Variant-1, 0, c)
			return
		}
		r.DrawRect(pos, board.V(cell, cell), c)
		renderWalls(r, h.Cells[at.Y][at.X].DirectionFlags, pos, cell, c)
	})
}

// renderWalls outlines the sides of a house cell that have no neighbour.
func renderWalls(r Renderer, flags board.Direction, pos board.Vec2, cell float32, c Color) {
	wall := wallColor.Alpha(c.A)
	half := (cell - wallThickness*cell) / 2
	thick := wallThickness * cell
	if !flags.Has(board.North) {
		r.DrawRect(pos.Add(board.V(0, half)), board.V(cell, thick), wall)
	}
	if !flags.Has(board.South) {
		r.DrawRect(pos.Add(board.V(0, -half)), board.V(cell, thick), wall)
	}
	if !flags.Has(board.East) {
		r.DrawRect(pos.Add(board.V(half, 0)), board.V(thick, cell), wall)
	}
	if !flags.Has(board.West) {
		r.DrawRect(pos.Add(board.V(-half, 0)), board.V(thick, cell), wall)
	}
}

package board

import "math"

// HouseOrigin is the grid coordinate under the house anchor.
func (g *Grid) HouseOrigin(h *House) Coord {
	local := h.Pos.Sub(g.Pos).Scale(1.0 / TileSize)
	return Coord{
		X: int(math.Round(float64(local.X))),
		Y: int(math.Round(float64(local.Y))),
	}
}

// HouseCanFit reports whether h lies inside the grid and covers only None tiles.
func (g *Grid) HouseCanFit(h *House) bool {
	if !g.WorldBounds().Encloses(h.WorldBounds()) {
		return false
	}
	origin := g.HouseOrigin(h)
	fits := true
	h.EachOccupied(func(c Coord) {
		if !fits {
			return
		}
		t := g.Tile(origin.X+c.X, origin.Y+c.Y)
		if t == nil || t.Type != None {
			fits = false
		}
	})
	return fits
}

// HouseIsTouchingRoad reports whether any occupied cell of h has a Road tile
// as an orthogonal neighbour.
func (g *Grid) HouseIsTouchingRoad(h *House) bool {
	origin := g.HouseOrigin(h)
	touching := false
	h.EachOccupied(func(c Coord) {
		if touching {
			return
		}
		p := origin.Add(c)
		for _, d := range orthoDeltas {
			if t := g.Tile(p.X+d.X, p.Y+d.Y); t != nil && t.Type == Road {
				touching = true
				return
			}
		}
	})
	return touching
}

// AddHouse commits h to the grid. Callers validate fit and road contact first.
func (g *Grid) AddHouse(h *House) {
	h.State = Placed
	g.Houses = append(g.Houses, h)
	h.Footprint(g.HouseOrigin(h)).Each(func(c Coord) {
		g.SetTile(c.X, c.Y, HousePart)
	})
}

// HouseFitsSomewhere searches every tile and rotation for a legal placement of
// a copy of h. It returns the first fitting copy in the Fittable state, or nil.
func (g *Grid) HouseFitsSomewhere(h *House) *House {
	cp := h.Copy()
	cp.State = Fittable
	for i := range g.tiles {
		cp.Pos = g.WorldPos(g.tiles[i].Coord())
		for r := 0; r < 4; r++ {
			if g.HouseCanFit(cp) && g.HouseIsTouchingRoad(cp) {
				return cp
			}
			cp.Rotate(1)
		}
	}
	return nil
}

// CheckAvailableSpaces is a coarse test for a None tile next to a Road tile.
// It stores and returns the result.
func (g *Grid) CheckAvailableSpaces() bool {
	g.HasAvailableSpaces = false
	for i := range g.tiles {
		t := &g.tiles[i]
		if t.Type != Road {
			continue
		}
		for _, d := range orthoDeltas {
			if n := g.Tile(t.X+d.X, t.Y+d.Y); n != nil && n.Type == None {
				g.HasAvailableSpaces = true
				return true
			}
		}
	}
	return false
}

// HouseAt returns the placed house covering (x, y), or nil.
func (g *Grid) HouseAt(x, y int) *House {
	c := Coord{x, y}
	for _, h := range g.Houses {
		if h.Footprint(g.HouseOrigin(h)).Has(c) {
			return h
		}
	}
	return nil
}

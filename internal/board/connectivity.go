package board

// pilotRoadMinDistance is the Chebyshev radius inside which a second edge road
// does not become a pilot unless it is still disconnected.
const pilotRoadMinDistance = 3

// CheckRoadConnection recomputes which roads are reachable from the grid edge.
// Reachable roads become Road, the rest stay DisconnectedRoad, and
// AllRoadsConnected reports whether nothing was left behind.
func (g *Grid) CheckRoadConnection() {
	var roads []*Tile
	for i := range g.tiles {
		t := &g.tiles[i]
		if !t.Type.IsRoad() {
			continue
		}
		t.Type = DisconnectedRoad
		t.PilotRoad = false
		roads = append(roads, t)
	}

	var edgeRoads []*Tile
	for _, t := range roads {
		if g.onEdge(t) {
			edgeRoads = append(edgeRoads, t)
		}
	}
	if len(edgeRoads) == 0 {
		g.AllRoadsConnected = false
		return
	}

	// pilots are picked while filling so a later edge tile can see whether an
	// earlier fill already reached it
	var pilots []*Tile
	for _, t := range edgeRoads {
		nearby := false
		for _, p := range pilots {
			if p.Coord().Chebyshev(t.Coord()) <= pilotRoadMinDistance {
				nearby = true
				break
			}
		}
		if nearby && t.Type != DisconnectedRoad {
			continue
		}
		t.PilotRoad = true
		pilots = append(pilots, t)
		g.setConnectedRoads(t.X, t.Y)
	}

	g.AllRoadsConnected = true
	for _, t := range roads {
		if t.Type != Road {
			g.AllRoadsConnected = false
			break
		}
	}
}

// setConnectedRoads flips every DisconnectedRoad 4-connected to (x, y) into
// Road. The type flip marks a tile as visited.
func (g *Grid) setConnectedRoads(x, y int) {
	stack := []Coord{{x, y}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := g.Tile(cur.X, cur.Y)
		if t == nil || t.Type != DisconnectedRoad {
			continue
		}
		t.Type = Road
		for _, d := range orthoDeltas {
			stack = append(stack, cur.Add(d))
		}
	}
}

// RecalculateDirections refreshes the N/E/S/W flags of every Road tile. A
// pilot road also points off the grid so edge roads render as running out of it.
func (g *Grid) RecalculateDirections() {
	for i := range g.tiles {
		t := &g.tiles[i]
		if t.Type != Road {
			t.DirectionFlags = 0
			continue
		}
		var flags Direction
		for k, d := range orthoDeltas {
			n := t.Coord().Add(d)
			if g.InBounds(n.X, n.Y) {
				if g.Tile(n.X, n.Y).Type != Road {
					continue
				}
			} else if !t.PilotRoad {
				continue
			}
			flags |= orthoDirs[k]
		}
		t.DirectionFlags = flags
	}
}

// DisconnectedCount returns how many road tiles are not reachable from an edge.
func (g *Grid) DisconnectedCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Type == DisconnectedRoad {
			n++
		}
	}
	return n
}

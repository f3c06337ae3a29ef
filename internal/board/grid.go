package board

import "math"

// Grid owns the tile array of one round, the houses placed on it and a single
// snapshot buffer used for drag previews.
type Grid struct {
	Pos    Vec2 // world centre of tile (0, 0)
	Width  int
	Height int
	Houses []*House

	AllRoadsConnected  bool
	HasAvailableSpaces bool

	tiles    []Tile
	snapshot []TileType
}

// Counts is the scoring tally of a grid.
type Counts struct {
	Total      int
	HouseTiles int
	Roads      int
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		tiles:    make([]Tile, width*height),
		snapshot: make([]TileType, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = Tile{X: i % width, Y: i / width}
	}
	return g
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Tile returns the tile at (x, y), or nil when outside the grid.
func (g *Grid) Tile(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[x+y*g.Width]
}

// Tiles returns the backing row-major tile slice.
func (g *Grid) Tiles() []Tile { return g.tiles }

func (g *Grid) SetTile(x, y int, t TileType) {
	if tile := g.Tile(x, y); tile != nil {
		tile.Type = t
	}
}

// SetTileLine writes t along the dominant axis between a and b. The run is
// vertical at a.X when |dy| > |dx| and horizontal at a.Y otherwise, clipped to
// the grid. It returns the tiles it touched.
func (g *Grid) SetTileLine(a, b Coord, t TileType) []*Tile {
	var touched []*Tile
	if abs(b.X-a.X) < abs(b.Y-a.Y) {
		if a.X < 0 || a.X >= g.Width {
			return nil
		}
		start := max(min(a.Y, b.Y), 0)
		end := min(max(a.Y, b.Y), g.Height-1)
		for y := start; y <= end; y++ {
			touched = append(touched, g.Tile(a.X, y))
		}
	} else {
		if a.Y < 0 || a.Y >= g.Height {
			return nil
		}
		start := max(min(a.X, b.X), 0)
		end := min(max(a.X, b.X), g.Width-1)
		for x := start; x <= end; x++ {
			touched = append(touched, g.Tile(x, a.Y))
		}
	}
	for _, tile := range touched {
		tile.Type = t
	}
	return touched
}

// CreateSnapshot copies every tile type into the snapshot buffer.
func (g *Grid) CreateSnapshot() {
	for i := range g.tiles {
		g.snapshot[i] = g.tiles[i].Type
	}
}

// ResetToSnapshot restores every tile type from the snapshot buffer.
func (g *Grid) ResetToSnapshot() {
	for i := range g.tiles {
		g.tiles[i].Type = g.snapshot[i]
	}
}

func (g *Grid) Counts() Counts {
	c := Counts{Total: g.Width * g.Height}
	for i := range g.tiles {
		switch g.tiles[i].Type {
		case HousePart:
			c.HouseTiles++
		case Road:
			c.Roads++
		}
	}
	return c
}

// WorldPos is the world centre of the tile at c.
func (g *Grid) WorldPos(c Coord) Vec2 {
	return g.Pos.Add(V(float32(c.X), float32(c.Y)).Scale(TileSize))
}

func (g *Grid) WorldSize() Vec2 {
	return V(float32(g.Width), float32(g.Height)).Scale(TileSize)
}

// WorldBounds is the world-space box covered by the tiles.
func (g *Grid) WorldBounds() Rect {
	lo := g.Pos.Sub(V(TileSize/2, TileSize/2))
	return Rect{Min: lo, Max: lo.Add(g.WorldSize())}
}

// CoordsFromPos converts a world position to grid coordinates. Unless
// beyondLimits is set, positions outside the grid report ok=false.
func (g *Grid) CoordsFromPos(pos Vec2, beyondLimits bool) (Coord, bool) {
	local := pos.Sub(g.Pos).Add(V(TileSize/2, TileSize/2))
	size := g.WorldSize()
	if !beyondLimits && (local.X < 0 || local.Y < 0 || local.X >= size.X || local.Y >= size.Y) {
		return Coord{}, false
	}
	return Coord{
		X: int(math.Floor(float64(local.X / TileSize))),
		Y: int(math.Floor(float64(local.Y / TileSize))),
	}, true
}

// TileFromPos returns the tile under a world position, or nil.
func (g *Grid) TileFromPos(pos Vec2) *Tile {
	c, ok := g.CoordsFromPos(pos, false)
	if !ok {
		return nil
	}
	return g.Tile(c.X, c.Y)
}

func (g *Grid) onEdge(t *Tile) bool {
	return t.X == 0 || t.Y == 0 || t.X == g.Width-1 || t.Y == g.Height-1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package board

import (
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// HouseState drives how a house is drawn; Invalid is feedback, not an error.
type HouseState int

const (
	Placing HouseState = iota
	Placed
	Invalid
	Fittable
)

// SingleCellVariants is how many alternate looks a one-cell house can take.
const SingleCellVariants = 3

// Cell is one entry of a house shape.
type Cell struct {
	Type           TileType
	DirectionFlags Direction
}

func (c Cell) Occupied() bool { return c.Type == HousePart }

// House is a polyomino. Cells[y][x] is y-up and cell (0, 0) is the anchor that
// sits at Pos in world space.
type House struct {
	Pos     Vec2
	Cells   [][]Cell
	State   HouseState
	Variant int // 0 for the regular look, 1..SingleCellVariants for one-cell houses
}

// NewHouse creates a house with a random shape no larger than (2k-1)x(2k-1).
func NewHouse(rng *rand.Rand, pos Vec2, k int) *House {
	h := &House{Pos: pos, Cells: GenerateShape(rng, k), State: Placing}
	if h.Width() == 1 && h.Height() == 1 {
		h.Variant = 1 + rng.Intn(SingleCellVariants)
	}
	h.RecalculateDirections()
	return h
}

// NewHouseFromMask builds a house from a y-up occupancy mask. The mask is used
// as given, without trimming.
func NewHouseFromMask(pos Vec2, mask [][]bool) *House {
	cells := make([][]Cell, len(mask))
	for y, row := range mask {
		cells[y] = make([]Cell, len(row))
		for x, on := range row {
			if on {
				cells[y][x].Type = HousePart
			}
		}
	}
	h := &House{Pos: pos, Cells: cells, State: Placing}
	h.RecalculateDirections()
	return h
}

func (h *House) Width() int {
	if len(h.Cells) == 0 {
		return 0
	}
	return len(h.Cells[0])
}

func (h *House) Height() int { return len(h.Cells) }

// Size returns the number of occupied cells.
func (h *House) Size() int {
	n := 0
	h.EachOccupied(func(Coord) { n++ })
	return n
}

// EachOccupied calls fn with the local coordinate of every occupied cell.
func (h *House) EachOccupied(fn func(c Coord)) {
	for y, row := range h.Cells {
		for x, cell := range row {
			if cell.Occupied() {
				fn(Coord{x, y})
			}
		}
	}
}

func (h *House) occupied(x, y int) bool {
	if y < 0 || y >= len(h.Cells) || x < 0 || x >= len(h.Cells[y]) {
		return false
	}
	return h.Cells[y][x].Occupied()
}

// WorldBounds is the world-space box the house shape covers.
func (h *House) WorldBounds() Rect {
	lo := h.Pos.Sub(V(TileSize/2, TileSize/2))
	return Rect{Min: lo, Max: lo.Add(V(float32(h.Width()), float32(h.Height())).Scale(TileSize))}
}

// CellPos is the world centre of local cell c.
func (h *House) CellPos(c Coord) Vec2 {
	return h.Pos.Add(V(float32(c.X), float32(c.Y)).Scale(TileSize))
}

// IsClicked reports whether the world position lands on an occupied cell.
func (h *House) IsClicked(pos Vec2) bool {
	local := pos.Sub(h.Pos).Add(V(TileSize/2, TileSize/2)).Scale(1.0 / TileSize)
	x := int(math.Floor(float64(local.X)))
	y := int(math.Floor(float64(local.Y)))
	return h.occupied(x, y)
}

// Copy returns a deep copy of the house.
func (h *House) Copy() *House {
	cells := make([][]Cell, len(h.Cells))
	for y, row := range h.Cells {
		cells[y] = append([]Cell(nil), row...)
	}
	return &House{Pos: h.Pos, Cells: cells, State: h.State, Variant: h.Variant}
}

// Footprint returns the grid coordinates the house would cover with its
// anchor at origin.
func (h *House) Footprint(origin Coord) mapset.Set[Coord] {
	fp := mapset.New[Coord]()
	h.EachOccupied(func(c Coord) {
		fp.Put(origin.Add(c))
	})
	return fp
}

// Rotate turns the shape by 90 degrees: clockwise when dir > 0, counter-clockwise
// otherwise. A transpose followed by a row or column reversal is an exact
// rotation on the cell lattice.
func (h *House) Rotate(dir int) {
	h.Cells = transpose(h.Cells)
	if dir > 0 {
		for i, j := 0, len(h.Cells)-1; i < j; i, j = i+1, j-1 {
			h.Cells[i], h.Cells[j] = h.Cells[j], h.Cells[i]
		}
	} else {
		for _, row := range h.Cells {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	}
	h.RecalculateDirections()
}

func transpose(cells [][]Cell) [][]Cell {
	if len(cells) == 0 {
		return cells
	}
	w, ht := len(cells[0]), len(cells)
	out := make([][]Cell, w)
	for x := 0; x < w; x++ {
		out[x] = make([]Cell, ht)
		for y := 0; y < ht; y++ {
			out[x][y] = cells[y][x]
		}
	}
	return out
}

// RecalculateDirections sets each occupied cell's eight-way flags from its
// occupied neighbours inside the shape.
func (h *House) RecalculateDirections() {
	for y, row := range h.Cells {
		for x := range row {
			cell := &row[x]
			if !cell.Occupied() {
				cell.DirectionFlags = 0
				continue
			}
			var flags Direction
			for k, d := range orthoDeltas {
				if h.occupied(x+d.X, y+d.Y) {
					flags |= orthoDirs[k]
				}
			}
			for k, d := range diagDeltas {
				if h.occupied(x+d.X, y+d.Y) {
					flags |= diagDirs[k]
				}
			}
			cell.DirectionFlags = flags
		}
	}
}

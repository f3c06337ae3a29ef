package board

// TileType is what occupies a grid cell.
type TileType int

const (
	None TileType = iota
	HousePart
	Road
	EphemeralRoad
	EphemeralDelete
	DisconnectedRoad
)

func (t TileType) String() string {
	switch t {
	case None:
		return "none"
	case HousePart:
		return "house"
	case Road:
		return "road"
	case EphemeralRoad:
		return "ephemeral-road"
	case EphemeralDelete:
		return "ephemeral-delete"
	case DisconnectedRoad:
		return "disconnected-road"
	}
	return "unknown"
}

// IsRoad reports whether t is a committed road, connected or not.
func (t TileType) IsRoad() bool { return t == Road || t == DisconnectedRoad }

// Direction is a set of compass bits pointing at same-type neighbours.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// OrthoMask selects the four orthogonal bits.
const OrthoMask Direction = North | East | South | West

func (d Direction) Has(o Direction) bool { return d&o == o }

// Orthogonal deltas in North, East, South, West order. y is up.
var orthoDeltas = [4]Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Diagonal deltas in NorthEast, SouthEast, SouthWest, NorthWest order.
var diagDeltas = [4]Coord{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

var orthoDirs = [4]Direction{North, East, South, West}
var diagDirs = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// Tile is a single grid cell. DirectionFlags only mean something for Road tiles.
type Tile struct {
	X, Y           int
	Type           TileType
	DirectionFlags Direction
	PilotRoad      bool
}

func (t *Tile) Coord() Coord { return Coord{t.X, t.Y} }

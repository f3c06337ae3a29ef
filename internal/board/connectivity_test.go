package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

// edgeReachable walks committed roads from every edge road tile.
func edgeReachable(g *Grid) mapset.Set[Coord] {
	seen := mapset.New[Coord]()
	var queue []Coord
	for _, tile := range g.Tiles() {
		if tile.Type.IsRoad() && g.onEdge(&tile) {
			seen.Put(tile.Coord())
			queue = append(queue, tile.Coord())
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range orthoDeltas {
			n := cur.Add(d)
			tile := g.Tile(n.X, n.Y)
			if tile == nil || !tile.Type.IsRoad() || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

func TestStraightRoadConnects(t *testing.T) {
	g := NewGrid(15, 15)
	g.SetTileLine(Coord{0, 7}, Coord{14, 7}, Road)
	g.CheckRoadConnection()

	assert.True(t, g.AllRoadsConnected)
	assert.Equal(t, 15, g.Counts().Roads)
	assert.Zero(t, g.DisconnectedCount())
}

func TestDisconnectedStub(t *testing.T) {
	g := NewGrid(15, 15)
	g.SetTileLine(Coord{5, 5}, Coord{7, 5}, Road)
	g.CheckRoadConnection()

	assert.False(t, g.AllRoadsConnected)
	for x := 5; x <= 7; x++ {
		assert.Equal(t, DisconnectedRoad, g.Tile(x, 5).Type)
	}
	assert.Zero(t, g.Counts().Roads)
}

func TestStubBesideConnectedRoad(t *testing.T) {
	g := NewGrid(15, 15)
	g.SetTileLine(Coord{0, 7}, Coord{14, 7}, Road)
	g.SetTileLine(Coord{3, 10}, Coord{6, 10}, Road)
	g.CheckRoadConnection()

	assert.False(t, g.AllRoadsConnected)
	assert.Equal(t, 4, g.DisconnectedCount())

	// joining the stub to the main road connects everything
	g.SetTileLine(Coord{3, 8}, Coord{3, 9}, Road)
	g.CheckRoadConnection()
	assert.True(t, g.AllRoadsConnected)
	assert.Zero(t, g.DisconnectedCount())
}

func TestCloseEdgeComponentsBothConnect(t *testing.T) {
	// two separate roads leave the bottom edge two columns apart, so the
	// second one is within pilot distance of the first
	g := NewGrid(10, 10)
	g.SetTileLine(Coord{2, 0}, Coord{2, 4}, Road)
	g.SetTileLine(Coord{4, 0}, Coord{4, 4}, Road)
	g.CheckRoadConnection()

	assert.True(t, g.AllRoadsConnected)
	assert.True(t, g.Tile(2, 0).PilotRoad)
	assert.True(t, g.Tile(4, 0).PilotRoad)
}

func TestPilotsAreSpreadAlongAnEdgeRoad(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetTileLine(Coord{0, 0}, Coord{9, 0}, Road)
	g.CheckRoadConnection()

	var pilots []Coord
	for _, tile := range g.Tiles() {
		if tile.PilotRoad {
			pilots = append(pilots, tile.Coord())
		}
	}
	// the first tile seeds the fill, later tiles are already Road
	assert.Equal(t, []Coord{{0, 0}, {4, 0}, {8, 0}}, pilots)
}

func TestConnectivitySoundness(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrid(12, 12)
		for i := 0; i < 1+rng.Intn(12); i++ {
			a := Coord{rng.Intn(12), rng.Intn(12)}
			b := Coord{rng.Intn(12), rng.Intn(12)}
			g.SetTileLine(a, b, Road)
		}
		g.CheckRoadConnection()

		reach := edgeReachable(g)
		for _, tile := range g.Tiles() {
			switch tile.Type {
			case Road:
				assert.True(t, reach.Has(tile.Coord()), "seed %d: road %v not reachable", seed, tile.Coord())
			case DisconnectedRoad:
				assert.False(t, reach.Has(tile.Coord()), "seed %d: disconnected %v reachable", seed, tile.Coord())
			}
		}
		assert.Equal(t, g.DisconnectedCount() == 0, g.AllRoadsConnected, "seed %d", seed)
	}
}

func TestCheckRoadConnectionIsIdempotent(t *testing.T) {
	g := NewGrid(8, 8)
	g.SetTileLine(Coord{0, 3}, Coord{5, 3}, Road)
	g.SetTileLine(Coord{6, 6}, Coord{6, 6}, Road)
	g.CheckRoadConnection()
	first := append([]Tile(nil), g.Tiles()...)

	g.CheckRoadConnection()
	assert.Equal(t, first, g.Tiles())
}

func TestRecalculateDirections(t *testing.T) {
	g := NewGrid(15, 15)
	g.SetTileLine(Coord{0, 7}, Coord{14, 7}, Road)
	g.SetTileLine(Coord{7, 8}, Coord{7, 10}, Road)
	g.CheckRoadConnection()
	g.RecalculateDirections()

	require.True(t, g.Tile(0, 7).PilotRoad)
	assert.Equal(t, East|West, g.Tile(0, 7).DirectionFlags, "pilot edge road points off grid")
	assert.Equal(t, East|West, g.Tile(14, 7).DirectionFlags)
	assert.Equal(t, East|West|North, g.Tile(7, 7).DirectionFlags)
	assert.Equal(t, North|South, g.Tile(7, 9).DirectionFlags)
	assert.Equal(t, South, g.Tile(7, 10).DirectionFlags)
	assert.Zero(t, g.Tile(3, 3).DirectionFlags)
}

func TestRecalculateDirectionsNonPilotEdge(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetTileLine(Coord{0, 0}, Coord{9, 0}, Road)
	g.CheckRoadConnection()
	g.RecalculateDirections()

	require.False(t, g.Tile(1, 0).PilotRoad)
	assert.Equal(t, East|West, g.Tile(1, 0).DirectionFlags)
	assert.Equal(t, East|West|South, g.Tile(0, 0).DirectionFlags)
}

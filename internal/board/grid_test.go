package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3)
	require.Len(t, g.Tiles(), 12)

	tile := g.Tile(3, 2)
	require.NotNil(t, tile)
	assert.Equal(t, 3, tile.X)
	assert.Equal(t, 2, tile.Y)
	assert.Equal(t, None, tile.Type)

	assert.Nil(t, g.Tile(-1, 0))
	assert.Nil(t, g.Tile(4, 0))
	assert.Nil(t, g.Tile(0, 3))
}

func TestSetTileLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want []Coord
	}{
		{"single tile", Coord{2, 2}, Coord{2, 2}, []Coord{{2, 2}}},
		{"horizontal", Coord{1, 3}, Coord{4, 3}, []Coord{{1, 3}, {2, 3}, {3, 3}, {4, 3}}},
		{"reversed horizontal", Coord{4, 3}, Coord{1, 3}, []Coord{{1, 3}, {2, 3}, {3, 3}, {4, 3}}},
		{"vertical when dy dominates", Coord{3, 1}, Coord{4, 4}, []Coord{{3, 1}, {3, 2}, {3, 3}, {3, 4}}},
		{"diagonal tie is horizontal", Coord{1, 1}, Coord{3, 3}, []Coord{{1, 1}, {2, 1}, {3, 1}}},
		{"clipped to bounds", Coord{-3, 0}, Coord{9, 0}, []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"start row outside grid", Coord{1, 7}, Coord{3, 7}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(5, 5)
			touched := g.SetTileLine(tt.a, tt.b, Road)

			var got []Coord
			for _, tile := range touched {
				got = append(got, tile.Coord())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), g.Counts().Roads)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid(8, 8)
	for i := 0; i < 10; i++ {
		g.SetTile(rng.Intn(8), rng.Intn(8), TileType(rng.Intn(3)))
	}
	before := make([]TileType, len(g.Tiles()))
	for i, tile := range g.Tiles() {
		before[i] = tile.Type
	}

	g.CreateSnapshot()
	for i := 0; i < 30; i++ {
		a := Coord{rng.Intn(10) - 1, rng.Intn(10) - 1}
		b := Coord{rng.Intn(10) - 1, rng.Intn(10) - 1}
		g.SetTileLine(a, b, TileType(rng.Intn(6)))
	}
	g.ResetToSnapshot()

	for i, tile := range g.Tiles() {
		assert.Equal(t, before[i], tile.Type, "tile %d,%d", tile.X, tile.Y)
	}
}

func TestSnapshotPreviewDoesNotAccumulate(t *testing.T) {
	g := NewGrid(6, 6)
	g.CreateSnapshot()
	for x := 0; x < 6; x++ {
		g.ResetToSnapshot()
		g.SetTileLine(Coord{0, 2}, Coord{x, 2}, EphemeralRoad)
	}
	g.ResetToSnapshot()
	g.SetTileLine(Coord{0, 2}, Coord{1, 2}, EphemeralRoad)

	n := 0
	for _, tile := range g.Tiles() {
		if tile.Type == EphemeralRoad {
			n++
		}
	}
	assert.Equal(t, 2, n)
}

func TestCoordsFromPos(t *testing.T) {
	g := NewGrid(5, 5)

	c, ok := g.CoordsFromPos(g.WorldPos(Coord{3, 1}), false)
	require.True(t, ok)
	assert.Equal(t, Coord{3, 1}, c)

	// half a tile off centre still lands on the same tile
	c, ok = g.CoordsFromPos(g.WorldPos(Coord{3, 1}).Add(V(0.9, -0.9)), false)
	require.True(t, ok)
	assert.Equal(t, Coord{3, 1}, c)

	_, ok = g.CoordsFromPos(V(-5, 0), false)
	assert.False(t, ok)

	c, ok = g.CoordsFromPos(V(-5, 0), true)
	require.True(t, ok)
	assert.Equal(t, Coord{-2, 0}, c)

	assert.Nil(t, g.TileFromPos(V(100, 100)))
}

func TestCounts(t *testing.T) {
	g := NewGrid(15, 15)
	g.SetTileLine(Coord{0, 7}, Coord{14, 7}, Road)
	g.SetTile(3, 3, HousePart)
	g.SetTile(3, 4, HousePart)
	g.SetTile(9, 9, DisconnectedRoad)

	assert.Equal(t, Counts{Total: 225, HouseTiles: 2, Roads: 15}, g.Counts())
}

func TestRoadSprite(t *testing.T) {
	_, _, ok := RoadSprite(0)
	assert.False(t, ok)

	idx, angle, ok := RoadSprite(North | South)
	require.True(t, ok)
	assert.Equal(t, SpriteRoadStraight, idx)
	assert.Zero(t, angle)

	idx, _, ok = RoadSprite(North | East | South | West | NorthEast)
	require.True(t, ok)
	assert.Equal(t, SpriteRoadCross, idx)

	idx, angle, ok = RoadSprite(West | East)
	require.True(t, ok)
	assert.Equal(t, SpriteRoadStraight, idx)
	assert.InDelta(t, float64(pi/2), float64(angle), 1e-6)
}

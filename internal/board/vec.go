package board

import "math"

// TileSize is the world-space edge length of one grid cell.
const TileSize = 2

// Vec2 is a world-space position or size. World space is y-up.
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }

// Lerp moves from v towards o by fraction p.
func (v Vec2) Lerp(o Vec2, p float32) Vec2 {
	return v.Add(o.Sub(v).Scale(p))
}

func (v Vec2) Distance(o Vec2) float32 {
	dx, dy := float64(o.X-v.X), float64(o.Y-v.Y)
	return float32(math.Hypot(dx, dy))
}

// Snap rounds v to the nearest multiple of TileSize on both axes.
func (v Vec2) Snap() Vec2 {
	snap := func(f float32) float32 {
		return float32(math.Floor(float64(f+TileSize/2)/TileSize)) * TileSize
	}
	return Vec2{snap(v.X), snap(v.Y)}
}

// Rect is an axis-aligned world-space box.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Encloses reports whether o lies completely inside r.
func (r Rect) Encloses(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y && o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float32) Rect {
	return Rect{Min: r.Min.Sub(V(d, d)), Max: r.Max.Add(V(d, d))}
}

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y int
}

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Chebyshev returns the king-move distance between c and o.
func (c Coord) Chebyshev(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

package board

import "math/rand"

// GenerateShape grows a random connected polyomino inside a (2k-1)x(2k-1)
// scratch area and trims it to its occupied extent.
//
// The target cell count is uniform in [1, area]. Each growth step picks a
// random placed cell and a random empty orthogonal neighbour of it; a step
// whose pick has no empty neighbour is skipped, so the result may be smaller
// than the target.
func GenerateShape(rng *rand.Rand, k int) [][]Cell {
	if k < 1 {
		k = 1
	}
	n := 2*k - 1
	scratch := make([][]bool, n)
	for y := range scratch {
		scratch[y] = make([]bool, n)
	}

	target := 1 + rng.Intn(n*n)
	first := Coord{rng.Intn(n), rng.Intn(n)}
	scratch[first.Y][first.X] = true
	placed := []Coord{first}

	for i := 1; i < target; i++ {
		from := placed[rng.Intn(len(placed))]
		var empty []Coord
		for _, d := range orthoDeltas {
			c := from.Add(d)
			if c.X < 0 || c.Y < 0 || c.X >= n || c.Y >= n || scratch[c.Y][c.X] {
				continue
			}
			empty = append(empty, c)
		}
		if len(empty) == 0 {
			continue
		}
		c := empty[rng.Intn(len(empty))]
		scratch[c.Y][c.X] = true
		placed = append(placed, c)
	}

	return trimShape(scratch)
}

// trimShape drops fully empty border rows and columns. An empty mask yields a
// single occupied cell so callers always get a usable house.
func trimShape(mask [][]bool) [][]Cell {
	minX, minY, maxX, maxY := -1, -1, -1, -1
	for y, row := range mask {
		for x, on := range row {
			if !on {
				continue
			}
			if minX < 0 || x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if minY < 0 {
				minY = y
			}
			maxY = y
		}
	}
	if minX < 0 {
		return [][]Cell{{{Type: HousePart}}}
	}

	cells := make([][]Cell, maxY-minY+1)
	for y := range cells {
		cells[y] = make([]Cell, maxX-minX+1)
		for x := range cells[y] {
			if mask[minY+y][minX+x] {
				cells[y][x].Type = HousePart
			}
		}
	}
	return cells
}

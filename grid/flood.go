package grid

// Enclosed returns the row-major indices of open cells that cannot be reached
// from the border through other open cells, in ascending order. Marked cells
// act as walls; movement is 4-directional.
//
// Behavior:
//  1. Copy the grid into a visited mask: true = wall or already visited.
//  2. Seed a queue with every open border cell (x=0, x=side-1, y=0, y=side-1).
//  3. Pop cells and push each open, unvisited, in-bounds neighbour.
//  4. Any cell still false in the mask is part of an enclosed pocket.
//
// The grid itself is never modified.
//
// Time:   O(S²), S = side.
// Memory: O(S²) for the mask and queue.
func Enclosed(g *Grid) []int {
	visited := make([]bool, len(g.cells))
	copy(visited, g.cells)

	queue := make([]int, 0, 4*g.side)
	push := func(x, y int) {
		i := g.Index(x, y)
		if visited[i] {
			return // wall, or already queued
		}
		visited[i] = true
		queue = append(queue, i)
	}

	last := g.side - 1
	for k := 0; k < g.side; k++ {
		push(k, 0)
		push(k, last)
		push(0, k)
		push(last, k)
	}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		for _, d := range fourNeighbours {
			vx, vy := ux+d[0], uy+d[1]
			if g.InBounds(vx, vy) {
				push(vx, vy)
			}
		}
	}

	var pockets []int
	for i, v := range visited {
		if !v {
			pockets = append(pockets, i)
		}
	}
	return pockets
}

// BorderConnected reports whether every open cell is reachable from the border.
// A grid with no open cells at all is trivially connected.
func BorderConnected(g *Grid) bool {
	return len(Enclosed(g)) == 0
}

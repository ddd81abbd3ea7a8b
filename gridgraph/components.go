package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// ignoring hazards. Openings belong to the component of their adjacent interior cell.
// Returns a slice of components; each component is a slice of cell indices
// (row-major over the full rectangle) in discovery order.
//
// To convert an index back to a Position, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.walls))
	var comps [][]int
	for i0 := range g.walls {
		if g.walls[i0] || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, seen))
	}
	return comps
}

// Connected reports whether b is reachable from a through walkable cells
// when hazards are ignored. It is a necessary condition for any traversal.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	seen := make([]bool, len(g.walls))
	target := g.Index(b)
	for _, i := range g.flood(g.Index(a), seen) {
		if i == target {
			return true
		}
	}
	return false
}

// flood collects the component containing i0, marking cells in seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range g.neighborOffsets[1:] {
			v := u.Add(d[0], d[1])
			if !g.Walkable(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

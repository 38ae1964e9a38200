package maze

// Prune clears the wall shared by every pair of adjacent rock cells, on both
// sides, and returns how many shared walls it removed. Walls touching a path
// are left alone. A second run removes nothing.
func Prune(g *Grid) int {
	removed := 0
	for z := 0; z < g.width; z++ {
		for x := 0; x < g.length; x++ {
			c := &g.cells[z][x]
			if c.path {
				continue
			}
			// Right and Top cover every adjacent pair exactly once.
			for _, s := range [2]Side{Right, Top} {
				n := g.Neighbor(c, s)
				if n == nil || n.path {
					continue
				}
				if c.walls[s] || n.walls[s.Opposite()] {
					g.clearWall(c, s)
					removed++
				}
			}
		}
	}
	return removed
}

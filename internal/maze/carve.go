package maze

// CarveResult summarizes a carving pass.
type CarveResult struct {
	Start    Position
	Openings int // cells opened from an existing path cell
	Paths    int // path cells after carving, start included
}

// Carve turns the grid into a tree of corridors with a randomized growing-tree
// walk. A cell may only be opened while at most one of its orthogonal
// neighbors is already a path, so corridors stay one cell wide and never loop.
func Carve(g *Grid, rng Source) CarveResult {
	start := Position{X: rng.Intn(g.length), Z: rng.Intn(g.width)}
	g.open(g.cellAtPos(start))

	res := CarveResult{Start: start, Paths: 1}

	frontier := make([]Position, 0, g.length*g.width)
	frontier = append(frontier, start)
	candidates := make([]Position, 0, 4)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		current := frontier[i]

		for _, s := range Sides {
			if next := current.Step(s); g.canOpen(next) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			// Boxed in: drop it, order does not matter.
			last := len(frontier) - 1
			frontier[i] = frontier[last]
			frontier = frontier[:last]
			continue
		}

		chosen := candidates[rng.Intn(len(candidates))]
		g.open(g.cellAtPos(chosen))
		frontier = append(frontier, chosen)
		candidates = candidates[:0]

		res.Openings++
		res.Paths++
	}

	return res
}

// canOpen reports whether p is inside the grid, still rock, and touches at
// most one path cell orthogonally.
func (g *Grid) canOpen(p Position) bool {
	c := g.cellAtPos(p)
	if c == nil || c.path {
		return false
	}
	paths := 0
	for _, s := range Sides {
		if n := g.cellAtPos(p.Step(s)); n != nil && n.path {
			paths++
		}
	}
	return paths <= 1
}

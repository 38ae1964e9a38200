/*
Package maze builds a walkable maze on a rectangular grid and answers the
per-frame spatial queries the walker needs.

Construction is a single blocking pass: a growing-tree carver opens a tree of
corridor cells, a pruner removes back-to-back walls between untouched rock
cells, and a placer mounts torches on rock faces that look onto corridors.
At runtime the maze resolves collisions against rock cells and selects the
lights nearest to the observer.

Cells are addressed by (x, z): x runs along the grid length, z along its
width. Side Top faces +z and Bottom faces -z.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Side identifies one of a cell's four walls.
type Side int

const (
	Left   Side = iota // -x
	Top                // +z
	Right              // +x
	Bottom             // -z
)

// Sides lists every side in scan order.
var Sides = [4]Side{Left, Top, Right, Bottom}

func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Offset returns the grid step towards the neighbor behind this side.
func (s Side) Offset() (dx, dz int) {
	switch s {
	case Left:
		return -1, 0
	case Top:
		return 0, 1
	case Right:
		return 1, 0
	default:
		return 0, -1
	}
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Position is a grid coordinate. It may lie outside the grid.
type Position struct {
	X, Z int
}

func (p Position) Step(s Side) Position {
	dx, dz := s.Offset()
	return Position{X: p.X + dx, Z: p.Z + dz}
}

// Cell is one grid unit. Coordinates never change after creation.
type Cell struct {
	X, Z int

	walls [4]bool
	path  bool
	lit   bool
}

func (c *Cell) Wall(s Side) bool { return c.walls[s] }
func (c *Cell) IsPath() bool     { return c.path }
func (c *Cell) IsLit() bool      { return c.lit }

func (c *Cell) Position() Position { return Position{X: c.X, Z: c.Z} }

// OpenWalls counts sides without a wall.
func (c *Cell) OpenWalls() int {
	n := 0
	for _, w := range c.walls {
		if !w {
			n++
		}
	}
	return n
}

// Grid owns the cells, stored row-major by z.
type Grid struct {
	length int // cells along x
	width  int // cells along z
	cells  [][]Cell
}

// NewGrid allocates a fully walled grid with no paths.
func NewGrid(length, width int) (*Grid, error) {
	if length < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, length, width)
	}
	cells := make([][]Cell, width)
	for z := range cells {
		row := make([]Cell, length)
		for x := range row {
			row[x] = Cell{X: x, Z: z, walls: [4]bool{true, true, true, true}}
		}
		cells[z] = row
	}
	return &Grid{length: length, width: width, cells: cells}, nil
}

func (g *Grid) Length() int { return g.length }
func (g *Grid) Width() int  { return g.width }

func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.length && z >= 0 && z < g.width
}

// CellAt returns nil outside the grid. Callers treat nil as solid.
func (g *Grid) CellAt(x, z int) *Cell {
	if !g.InBounds(x, z) {
		return nil
	}
	return &g.cells[z][x]
}

func (g *Grid) cellAtPos(p Position) *Cell {
	return g.CellAt(p.X, p.Z)
}

// Neighbor returns the cell behind the given side of c, or nil.
func (g *Grid) Neighbor(c *Cell, s Side) *Cell {
	return g.cellAtPos(c.Position().Step(s))
}

func (g *Grid) IsPerimeter(x, z int) bool {
	return x == 0 || z == 0 || x == g.length-1 || z == g.width-1
}

// onPerimeter reports whether side s of (x, z) is part of the outer wall.
func (g *Grid) onPerimeter(x, z int, s Side) bool {
	switch s {
	case Left:
		return x == 0
	case Top:
		return z >= g.width-1
	case Right:
		return x >= g.length-1
	default:
		return z == 0
	}
}

// IsSolid reports whether (x, z) blocks movement. Outside the grid is solid.
func (g *Grid) IsSolid(x, z int) bool {
	c := g.CellAt(x, z)
	return c == nil || !c.path
}

// open carves c: it becomes a path and loses every wall except the outer ones.
func (g *Grid) open(c *Cell) {
	c.path = true
	for _, s := range Sides {
		c.walls[s] = g.onPerimeter(c.X, c.Z, s)
	}
}

// clearWall removes the wall on side s of c and the matching wall of its neighbor.
func (g *Grid) clearWall(c *Cell, s Side) {
	c.walls[s] = false
	if n := g.Neighbor(c, s); n != nil {
		n.walls[s.Opposite()] = false
	}
}

func (g *Grid) markLit(c *Cell) {
	c.lit = true
}

// Paths counts carved cells.
func (g *Grid) Paths() int {
	n := 0
	g.Each(func(c *Cell) {
		if c.path {
			n++
		}
	})
	return n
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for z := range g.cells {
		for x := range g.cells[z] {
			fn(&g.cells[z][x])
		}
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{length: g.length, width: g.width, cells: make([][]Cell, g.width)}
	for z := range g.cells {
		out.cells[z] = append([]Cell(nil), g.cells[z]...)
	}
	return out
}

// Equal compares dimensions and every cell's state.
func (g *Grid) Equal(o *Grid) bool {
	if g.length != o.length || g.width != o.width {
		return false
	}
	for z := range g.cells {
		for x := range g.cells[z] {
			if g.cells[z][x] != o.cells[z][x] {
				return false
			}
		}
	}
	return true
}

// Origin is the world position of the grid corner at cell (0, 0).
// The grid is centred on the world origin in XZ.
func (g *Grid) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		-float32(g.length) * CellSize / 2,
		0,
		-float32(g.width) * CellSize / 2,
	}
}

// CellBounds returns the XZ footprint of (x, z) in world space.
func (g *Grid) CellBounds(x, z int) Rect {
	o := g.Origin()
	x0 := o.X() + float32(x)*CellSize
	z0 := o.Z() + float32(z)*CellSize
	return Rect{X0: x0, Z0: z0, X1: x0 + CellSize, Z1: z0 + CellSize}
}

// CellCenter returns the world position of the centre of (x, z) at height y.
func (g *Grid) CellCenter(x, z int, y float32) mgl32.Vec3 {
	b := g.CellBounds(x, z)
	return mgl32.Vec3{(b.X0 + b.X1) / 2, y, (b.Z0 + b.Z1) / 2}
}

// WorldToCell returns the cell containing a world point. It may be outside the grid.
func (g *Grid) WorldToCell(p mgl32.Vec3) Position {
	o := g.Origin()
	return Position{
		X: floorDiv(p.X()-o.X(), CellSize),
		Z: floorDiv(p.Z()-o.Z(), CellSize),
	}
}

// String draws the grid top row first: '#' rock, ' ' path, '*' lit rock.
func (g *Grid) String() string {
	var b strings.Builder
	for z := g.width - 1; z >= 0; z-- {
		for x := 0; x < g.length; x++ {
			c := &g.cells[z][x]
			switch {
			case c.path:
				b.WriteByte(' ')
			case c.lit:
				b.WriteByte('*')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package maze

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// Options configures maze construction.
type Options struct {
	Length      int     // cells along x
	Width       int     // cells along z
	LightChance float64 // per interior rock cell, 0..1
}

func DefaultOptions() Options {
	return Options{Length: 20, Width: 20, LightChance: DefaultLightChance}
}

// Maze is a carved, pruned and lit grid. It is read-only once New returns.
type Maze struct {
	grid    *Grid
	lights  []Light
	carving CarveResult
}

// New builds a maze: carve, prune, then place lights. It blocks until done.
func New(opts Options, rng Source) (*Maze, error) {
	g, err := NewGrid(opts.Length, opts.Width)
	if err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}
	if opts.LightChance < 0 || opts.LightChance > 1 {
		return nil, fmt.Errorf("light chance %v outside [0, 1]", opts.LightChance)
	}

	carving := Carve(g, rng)
	pruned := Prune(g)
	lights := PlaceLights(g, rng, opts.LightChance)

	log.Printf("[MAZE] [INFO] built %dx%d maze: %d paths, %d walls pruned, %d lights",
		opts.Length, opts.Width, carving.Paths, pruned, len(lights))

	return &Maze{grid: g, lights: lights, carving: carving}, nil
}

func (m *Maze) Grid() *Grid          { return m.grid }
func (m *Maze) Lights() []Light      { return m.lights }
func (m *Maze) Carving() CarveResult { return m.carving }

// Mesh emits the maze geometry with the given textures.
func (m *Maze) Mesh(s Surfaces) Mesh {
	return BuildMesh(m.grid, m.lights, s)
}

// Collide pushes pos out of the rock around it; see Resolve.
func (m *Maze) Collide(pos *mgl32.Vec3) bool {
	return Resolve(m.grid, pos)
}

func (m *Maze) NearbyLights(pos mgl32.Vec3) [NearbyLightCount]LightSlot {
	return NearbyLights(m.lights, pos)
}

// SpawnPoint is the centre of the cell carving started from, at height y.
func (m *Maze) SpawnPoint(y float32) mgl32.Vec3 {
	s := m.carving.Start
	return m.grid.CellCenter(s.X, s.Z, y)
}

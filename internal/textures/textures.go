// Package textures paints the layers of the maze texture array as raw RGBA8
// pixels. Upload is left to the renderer.
package textures

import (
	"math"

	"labyrinth/internal/maze"
)

// Size is the width and height of every layer in pixels.
const Size = 64

// Array layers, in upload order.
const (
	Ceiling = iota
	Floor
	Wall
	Glow
	LayerCount
)

const (
	layerBytes = Size * Size * 4
	brickH     = 16
	brickW     = 32
	flagSize   = 32
	jointWidth = 2
)

// Surfaces returns how the maze mesh should sample the array: one texture
// per world unit on floor and ceiling, one per cell side on walls.
func Surfaces() maze.Surfaces {
	return maze.Surfaces{
		Ceiling: maze.TextureTiling{U: 1, V: 1, Layer: Ceiling},
		Floor:   maze.TextureTiling{U: 1, V: 1, Layer: Floor},
		Wall:    maze.TextureTiling{U: 1, V: 1, Layer: Wall},
		Glow:    Glow,
	}
}

// Array paints every layer and returns them back to back.
func Array(seed uint64) []uint8 {
	pix := make([]uint8, 0, LayerCount*layerBytes)
	for l := 0; l < LayerCount; l++ {
		pix = append(pix, Layer(l, seed)...)
	}
	return pix
}

// Layer paints one layer. Rows run bottom to top, matching GL's v axis.
func Layer(layer int, seed uint64) []uint8 {
	rng := maze.NewRand(seed ^ uint64(layer+1)*0x9E3779B97F4A7C15)
	pix := make([]uint8, layerBytes)
	switch layer {
	case Ceiling:
		paintCeiling(pix, rng)
	case Floor:
		paintFloor(pix, rng)
	case Wall:
		paintWall(pix, rng)
	case Glow:
		paintGlow(pix)
	}
	return pix
}

func set(pix []uint8, x, y int, col RGB, a uint8) {
	i := (y*Size + x) * 4
	pix[i+0] = col.R
	pix[i+1] = col.G
	pix[i+2] = col.B
	pix[i+3] = a
}

func jitter(rng maze.Source, spread int) int { return rng.Intn(2*spread+1) - spread }

// paintCeiling: rough stone in 8px blotches.
func paintCeiling(pix []uint8, rng maze.Source) {
	const block = 8
	var shade [Size / block][Size / block]int
	for by := range shade {
		for bx := range shade[by] {
			shade[by][bx] = jitter(rng, 10)
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			col := palette.Stone.Add(shade[y/block][x/block] + jitter(rng, 6))
			set(pix, x, y, col, 255)
		}
	}
}

// paintFloor: 2x2 flagstones with dark grout.
func paintFloor(pix []uint8, rng maze.Source) {
	var tint [Size / flagSize][Size / flagSize]int
	for fy := range tint {
		for fx := range tint[fy] {
			tint[fy][fx] = jitter(rng, 14)
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x%flagSize < jointWidth || y%flagSize < jointWidth {
				set(pix, x, y, palette.Grout, 255)
				continue
			}
			col := palette.Flag.Add(tint[y/flagSize][x/flagSize] + jitter(rng, 5))
			set(pix, x, y, col, 255)
		}
	}
}

// paintWall: running-bond brick courses; odd courses shift half a brick.
func paintWall(pix []uint8, rng maze.Source) {
	var tint [Size / brickH][Size / brickW]int
	for c := range tint {
		for b := range tint[c] {
			tint[c][b] = jitter(rng, 18)
		}
	}
	for y := 0; y < Size; y++ {
		course := y / brickH
		offset := (course % 2) * brickW / 2
		for x := 0; x < Size; x++ {
			bx := (x + offset) % Size
			if y%brickH < jointWidth || bx%brickW < jointWidth {
				set(pix, x, y, palette.Mortar, 255)
				continue
			}
			col := palette.Brick.Add(tint[course][bx/brickW] + jitter(rng, 6))
			set(pix, x, y, col, 255)
		}
	}
}

const (
	handleTop   = Size * 55 / 100
	handleHalf  = 3
	flameY      = Size * 78 / 100
	flameRadius = 14.0
)

// paintGlow: an opaque handle rising from the foot of the quad, crowned by a
// flame that fades out radially. Everything else is transparent.
func paintGlow(pix []uint8) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := float64(x) + 0.5 - Size/2
			dy := float64(y) + 0.5 - flameY
			f := 1 - math.Hypot(dx, dy)/flameRadius
			switch {
			case f > 0:
				col := palette.Flame.Mul(uint8(155 + 100*f))
				set(pix, x, y, col, uint8(255*f*f))
			case y < handleTop && x >= Size/2-handleHalf && x < Size/2+handleHalf:
				set(pix, x, y, palette.Handle, 255)
			}
		}
	}
}

// Package preview draws a maze top-down in a terminal and lets an observer
// walk it, using the same collision and light selection as the 3D walker.
package preview

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"labyrinth/internal/maze"
	"labyrinth/internal/observer"
)

const (
	cellCols = 2 // terminal columns per maze cell
	tickRate = 16 * time.Millisecond
	holdTime = 180 * time.Millisecond // terminals send no key-up; hold movement this long per press
	turnStep = math.Pi / 8
)

var (
	styleRock     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLitRock  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleLight    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFarLight = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleObserver = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewer owns the maze, the observer and the screen they are drawn on.
type Viewer struct {
	screen tcell.Screen
	opts   maze.Options
	seed   uint64

	maze *maze.Maze
	obs  *observer.Observer

	intent    observer.Intent
	heldUntil time.Time
	bumps     int
}

// New builds a maze from seed and drops an observer at its start cell.
func New(screen tcell.Screen, opts maze.Options, seed uint64) (*Viewer, error) {
	v := &Viewer{screen: screen, opts: opts}
	if err := v.Regenerate(seed); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) Maze() *maze.Maze             { return v.maze }
func (v *Viewer) Observer() *observer.Observer { return v.obs }
func (v *Viewer) Seed() uint64                 { return v.seed }
func (v *Viewer) Bumps() int                   { return v.bumps }

// Regenerate replaces the maze and respawns the observer.
func (v *Viewer) Regenerate(seed uint64) error {
	m, err := maze.New(v.opts, maze.NewRand(seed))
	if err != nil {
		return fmt.Errorf("build maze: %w", err)
	}
	v.maze = m
	v.seed = seed
	v.obs = observer.New(m.SpawnPoint(observer.EyeHeight), 0)
	v.intent = observer.Intent{}
	v.bumps = 0
	return nil
}

// HandleEvent applies one terminal event. It returns false when the viewer
// should quit.
func (v *Viewer) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.hold(now, 0, 1)
		case tcell.KeyDown:
			v.hold(now, 0, -1)
		case tcell.KeyLeft:
			v.intent.LookX -= turnStep
		case tcell.KeyRight:
			v.intent.LookX += turnStep
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w':
				v.hold(now, 0, 1)
			case 's':
				v.hold(now, 0, -1)
			case 'a':
				v.hold(now, -1, 0)
			case 'd':
				v.hold(now, 1, 0)
			case 'r', 'R':
				if err := v.Regenerate(v.seed + 1); err != nil {
					log.Printf("[PREVIEW] [ERROR] regenerate: %v", err)
				}
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) hold(now time.Time, right, forward float32) {
	v.intent.Right = right
	v.intent.Forward = forward
	v.heldUntil = now.Add(holdTime)
}

// Step advances the observer by dt and pushes it out of any rock it walked into.
func (v *Viewer) Step(now time.Time, dt float32) {
	if now.After(v.heldUntil) {
		v.intent.Right, v.intent.Forward = 0, 0
	}
	v.obs.Update(v.intent, dt)
	v.intent.LookX, v.intent.LookY = 0, 0

	if v.maze.Collide(&v.obs.Position) {
		v.bumps++
	}
}

// ScreenPos maps a cell to the terminal column and row of its left half.
// The map is seen from above: +z runs up the screen and +x runs left.
func (v *Viewer) ScreenPos(p maze.Position) (int, int) {
	g := v.maze.Grid()
	return (g.Length() - 1 - p.X) * cellCols, g.Width() - 1 - p.Z
}

// Draw renders the maze, then the lights, the observer and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	g := v.maze.Grid()

	g.Each(func(c *maze.Cell) {
		if c.IsPath() {
			return
		}
		ch, st := '█', styleRock
		if c.IsLit() {
			ch, st = '▓', styleLitRock
		}
		x, y := v.ScreenPos(c.Position())
		for i := 0; i < cellCols; i++ {
			v.screen.SetContent(x+i, y, ch, nil, st)
		}
	})

	lights := v.maze.Lights()
	near := make(map[int]bool, maze.NearbyLightCount)
	for _, i := range maze.SelectNearest(lights, v.obs.Position) {
		near[i] = true
	}
	for i, l := range lights {
		st := styleFarLight
		if near[i] {
			st = styleLight
		}
		x, y := v.ScreenPos(g.WorldToCell(l.Position))
		v.screen.SetContent(x+1, y, '*', nil, st)
	}

	at := g.WorldToCell(v.obs.Position)
	x, y := v.ScreenPos(at)
	v.screen.SetContent(x, y, heading(v.obs.Direction()), nil, styleObserver)

	status := fmt.Sprintf("seed %d  cell (%d,%d)  lights %d/%d  bumps %d  [arrows/wasd move, r new maze, q quit]",
		v.seed, at.X, at.Z, len(near), len(lights), v.bumps)
	drawText(v.screen, 0, g.Width()+1, status, styleStatus)

	v.screen.Show()
}

// Run drives the viewer until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	last := time.Now()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			v.Step(now, float32(now.Sub(last).Seconds()))
			last = now
			v.Draw()
		}
	}
}

// heading picks an arrow for the direction the observer faces, in screen terms.
func heading(d mgl32.Vec3) rune {
	dx, dz := d.X(), d.Z()
	if math.Abs(float64(dx)) > math.Abs(float64(dz)) {
		if dx > 0 {
			return '<'
		}
		return '>'
	}
	if dz > 0 {
		return '^'
	}
	return 'v'
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}

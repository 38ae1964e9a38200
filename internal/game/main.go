// Package game is the desktop walker: a GLFW window, an OpenGL renderer and
// oto audio around a maze and an observer.
package game

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"labyrinth/internal/config"
	"labyrinth/internal/maze"
	"labyrinth/internal/observer"
	"labyrinth/internal/sound"
	"labyrinth/internal/textures"
)

// RunDesktop opens the window and walks the maze until Escape or close.
// Fatal setup errors panic.
func RunDesktop(cfg config.Config) {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Fullscreen)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}
	log.Printf("[GAME] [INFO] OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	audio, err := InitAudio(cfg.Volume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	defer audio.Close()

	// GL state. Walls are single quads seen from both sides.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	rend, err := NewRenderer(cfg.Seed)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	shake := observer.Shake{Seed: cfg.Seed}

	bus := NewEventBus()
	bus.Subscribe(EventStep, func(Event) { audio.Play(sound.Step, stepGain) })
	bus.Subscribe(EventBump, func(Event) {
		audio.Play(sound.Bump, bumpGain)
		shake.Add(bumpShake, bumpShakeTime)
	})
	bus.Subscribe(EventRegenerate, func(e Event) {
		audio.Play(sound.Regenerate, chimeGain)
		log.Printf("[GAME] [INFO] regenerated maze with seed %d", e.Seed)
	})

	opts := maze.Options{Length: cfg.Length, Width: cfg.Width, LightChance: cfg.LightChance}
	seed := cfg.Seed
	m, obs, err := buildLevel(opts, seed, rend)
	if err != nil {
		panic(err)
	}

	input := NewInput(cfg.MouseSensitivity)
	var steps observer.Pedometer
	steps.Reset(obs.Position)
	colliding := false
	lastBump := -bumpCooldown

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameTime {
			dt = MaxFrameTime
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		gl.Viewport(0, 0, int32(fbW), int32(fbH))

		if window.GetAttrib(glfw.Focused) == glfw.False {
			input.ResetMouse()
		}

		if input.JustPressed(window, glfw.KeyR) {
			nm, nobs, err := buildLevel(opts, seed+1, rend)
			if err != nil {
				log.Printf("[GAME] [ERROR] regenerate: %v", err)
			} else {
				seed++
				m, obs = nm, nobs
				steps.Reset(obs.Position)
				bus.Emit(Event{Type: EventRegenerate, Position: obs.Position, Seed: seed})
			}
		}

		// Move, then resolve against the rock, then pick the lights for the
		// corrected position.
		obs.Update(input.Intent(window), float32(dt))

		hit := m.Collide(&obs.Position)
		if hit && !colliding && obs.Walking() && now-lastBump >= bumpCooldown {
			lastBump = now
			bus.Emit(Event{Type: EventBump, Position: obs.Position})
		}
		colliding = hit

		if steps.Advance(obs.Position) {
			bus.Emit(Event{Type: EventStep, Position: obs.Position})
		}

		slots := m.NearbyLights(obs.Position)
		audio.SetTorchGain(sound.TorchGain(nearestTorch(slots, obs.Position)))

		shake.Update(float32(dt))
		rend.SetLights(slots)
		rend.Draw(Projection(fbW, fbH), shake.Apply(obs.View()))
		window.SwapBuffers()
	}
}

// buildLevel generates the maze for seed, uploads its mesh and spawns an
// observer in the start cell.
func buildLevel(opts maze.Options, seed uint64, rend *Renderer) (*maze.Maze, *observer.Observer, error) {
	m, err := maze.New(opts, maze.NewRand(seed))
	if err != nil {
		return nil, nil, fmt.Errorf("build maze: %w", err)
	}
	rend.UploadMesh(m.Mesh(textures.Surfaces()))
	return m, observer.New(m.SpawnPoint(observer.EyeHeight), 0), nil
}

// nearestTorch is the distance to the closest real light. The last slot is
// the observer's own glow and is skipped.
func nearestTorch(slots [maze.NearbyLightCount]maze.LightSlot, pos mgl32.Vec3) float32 {
	best := float32(-1)
	for _, s := range slots[:maze.NearbyLightCount-1] {
		d := s.Position.Vec3().Sub(pos).Len()
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

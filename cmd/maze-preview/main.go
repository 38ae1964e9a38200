// Command maze-preview draws a generated maze top-down in the terminal and
// lets you walk it with the arrow keys.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"labyrinth/internal/config"
	"labyrinth/internal/maze"
	"labyrinth/internal/preview"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] [FATAL] load config: %v", err)
	}

	seed := flag.Uint64("seed", cfg.Seed, "maze seed")
	length := flag.Int("length", cfg.Length, "cells along x")
	width := flag.Int("width", cfg.Width, "cells along z")
	lights := flag.Float64("lights", cfg.LightChance, "torch chance per interior rock cell")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[MAIN] [FATAL] new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[MAIN] [FATAL] init screen: %v", err)
	}

	// Hold log lines back until the terminal is restored.
	var held bytes.Buffer
	log.SetOutput(&held)
	restore := func() {
		screen.Fini()
		log.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(held.Bytes())
	}

	opts := maze.Options{Length: *length, Width: *width, LightChance: *lights}
	viewer, err := preview.New(screen, opts, *seed)
	if err != nil {
		restore()
		log.Fatalf("[MAIN] [FATAL] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = viewer.Run(ctx)
	restore()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[MAIN] [FATAL] %v", err)
	}
	log.Printf("[MAIN] [INFO] last seed %d", viewer.Seed())
}

// Command labyrinth walks a procedurally generated, torch-lit maze in first
// person. Settings come from LABYRINTH_* environment variables or a .env file.
package main

import (
	"log"

	"labyrinth/internal/config"
	"labyrinth/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] [FATAL] load config: %v", err)
	}
	log.Printf("[MAIN] [INFO] seed %d, %dx%d cells", cfg.Seed, cfg.Length, cfg.Width)

	game.RunDesktop(cfg)
}

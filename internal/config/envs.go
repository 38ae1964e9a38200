// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the settings shared by the desktop walker and the preview.
type Config struct {
	Seed             uint64  // maze seed; the clock when unset
	Length           int     // cells along x
	Width            int     // cells along z
	LightChance      float64 // per interior rock cell, 0..1
	MouseSensitivity float64 // radians per pixel
	Volume           float64 // master gain, 0..1
	Fullscreen       bool
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. A missing .env file is not an error; variables already
// set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{}

	seed, set, err := getEnvAsUint("LABYRINTH_SEED")
	if err != nil {
		return Config{}, err
	}
	if !set {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed

	if cfg.Length, err = getEnvAsInt("LABYRINTH_LENGTH", 20, 1); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsInt("LABYRINTH_WIDTH", 20, 1); err != nil {
		return Config{}, err
	}
	if cfg.LightChance, err = getEnvAsUnit("LABYRINTH_LIGHT_CHANCE", 0.5); err != nil {
		return Config{}, err
	}
	if cfg.MouseSensitivity, err = getEnvAsFloat("LABYRINTH_MOUSE_SENSITIVITY", 0.0025); err != nil {
		return Config{}, err
	}
	if cfg.Volume, err = getEnvAsUnit("LABYRINTH_VOLUME", 0.6); err != nil {
		return Config{}, err
	}
	if cfg.Fullscreen, err = getEnvAsBool("LABYRINTH_FULLSCREEN", false); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string) (uint64, bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
	return v, true, nil
}

// getEnvAsInt parses an integer no smaller than lo.
func getEnvAsInt(key string, defaultValue, lo int) (int, error) {
	raw := getEnvWithDefault(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
	if v < lo {
		return 0, fmt.Errorf("%w: %s=%d is below %d", ErrInvalidValue, key, v, lo)
	}
	return v, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnvWithDefault(key, strconv.FormatFloat(defaultValue, 'g', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
	return v, nil
}

// getEnvAsUnit parses a float in [0, 1].
func getEnvAsUnit(key string, defaultValue float64) (float64, error) {
	v, err := getEnvAsFloat(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %s=%v outside [0, 1]", ErrInvalidValue, key, v)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnvWithDefault(key, strconv.FormatBool(defaultValue))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
	return v, nil
}

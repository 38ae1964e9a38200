package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"labyrinth/internal/sound"
)

// AudioSystem plays the synthesized effects and the torch loop. A nil
// *AudioSystem is valid and silent.
type AudioSystem struct {
	ctx     *oto.Context
	ready   chan struct{}
	volume  float64
	crackle oto.Player
	variant atomic.Uint64
}

// InitAudio opens the output device. volume is the master gain in [0, 1].
func InitAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, sound.BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &AudioSystem{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

func (a *AudioSystem) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play renders kind and plays it once on its own player.
func (a *AudioSystem) Play(kind sound.Kind, gain float64) {
	if !a.isReady() || gain <= 0 || a.volume <= 0 {
		return
	}
	samples := sound.Generate(kind, a.variant.Add(1))
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(sound.NewReader(samples))
		player.SetVolume(a.volume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SetTorchGain sets the crackle loop volume, starting the loop on first use.
func (a *AudioSystem) SetTorchGain(gain float64) {
	if !a.isReady() {
		return
	}
	if a.crackle == nil {
		a.crackle = a.ctx.NewPlayer(sound.NewCrackle(uint64(time.Now().UnixNano())))
		a.crackle.SetVolume(0)
		a.crackle.Play()
	}
	a.crackle.SetVolume(a.volume * crackleGain * clampF(gain, 0, 1))
}

func (a *AudioSystem) Close() {
	if a == nil || a.crackle == nil {
		return
	}
	a.crackle.Close()
	a.crackle = nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

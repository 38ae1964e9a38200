// Package sound synthesizes the walker's sound effects as interleaved stereo
// float32 little-endian PCM, ready for an oto player.
package sound

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
	frameBytes   = 8
)

// Kind identifies a one-shot effect.
type Kind int

const (
	Step Kind = iota
	Bump
	Regenerate
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "step"
	case Bump:
		return "bump"
	case Regenerate:
		return "regenerate"
	}
	return "unknown"
}

// Generate renders kind. variant picks between slightly different takes so
// repeated footsteps do not sound identical; equal inputs give equal output.
func Generate(kind Kind, variant uint64) []byte {
	switch kind {
	case Step:
		return genStep(variant)
	case Bump:
		return genBump(variant)
	case Regenerate:
		return genRegenerate()
	}
	return nil
}

// genStep: soft noise scuff over a low thump.
func genStep(variant uint64) []byte {
	seed := variant*0x9E3779B97F4A7C15 + 1
	n := int(0.11 * SampleRate)
	buf := makeBuf(n)
	thump := 70 + 20*math.Abs(lcg(&seed))
	var lp float64
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp += (lcg(&seed) - lp) * 0.18
		scuff := lp * adsr(p, 0.04, 0.3, 0.25, 0.4) * 0.9
		body := math.Sin(2*math.Pi*thump*t) * math.Exp(-t*45) * 0.6
		putStereoF32(buf, i, softSat(scuff+body)*0.7)
	}
	return buf
}

// genBump: falling sine thud with a short gritty click.
func genBump(variant uint64) []byte {
	seed := variant ^ 0xB0B
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	var phase float64
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := 50 + 70*math.Exp(-t*25)
		phase += 2 * math.Pi * freq / SampleRate
		body := math.Sin(phase) * math.Exp(-t*22)
		click := lcg(&seed) * math.Exp(-t*180) * 0.5
		putStereoF32(buf, i, softSat(body+click)*0.8)
	}
	return buf
}

// genRegenerate: three rising FM bell notes.
func genRegenerate() []byte {
	notes := []float64{392.0, 523.25, 659.25}
	noteLen := int(0.18 * SampleRate)
	tail := int(0.2 * SampleRate)
	n := noteLen*len(notes) + tail
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		var s float64
		for k, f := range notes {
			start := k * noteLen
			if i < start {
				continue
			}
			j := i - start
			t := float64(j) / SampleRate
			s += fm(t, f, 3.5, 1.2*math.Exp(-t*6)) * math.Exp(-t*5) * 0.3
		}
		p := float64(i) / float64(n)
		putStereoF32(buf, i, softSat(s)*adsr(p, 0.005, 0.1, 0.9, 0.15))
	}
	return buf
}

// Reader plays a rendered buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * frameBytes
	for c := 0; c < ChannelCount; c++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

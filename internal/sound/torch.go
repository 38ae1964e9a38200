package sound

import "math"

// TorchRange is the distance at which a torch falls silent.
const TorchRange = 4.0

// TorchGain maps the distance to the nearest torch to a volume in [0, 1].
func TorchGain(dist float32) float64 {
	d := float64(dist)
	if d >= TorchRange || math.IsNaN(d) {
		return 0
	}
	if d <= 0 {
		return 1
	}
	g := 1 - d/TorchRange
	return g * g
}

// Crackle is an endless torch loop: a low hiss with random pops.
// It never returns io.EOF.
type Crackle struct {
	seed uint64
	hiss float64
	pop  float64 // current pop amplitude, decays per sample
	tone float64 // pop ring frequency
	t    float64 // time since the last pop
}

func NewCrackle(seed uint64) *Crackle { return &Crackle{seed: seed | 1} }

func (c *Crackle) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	for i := 0; i < frames; i++ {
		putStereoF32(p, i, c.next())
	}
	return frames * frameBytes, nil
}

func (c *Crackle) next() float64 {
	noise := lcg(&c.seed)
	c.hiss += (noise - c.hiss) * 0.05

	// roughly 18 pops a second
	if trig := lcg(&c.seed); trig > 1-2*18.0/SampleRate {
		c.pop = 0.35 + 0.45*math.Abs(lcg(&c.seed))
		c.tone = 900 + 2500*math.Abs(lcg(&c.seed))
		c.t = 0
	}
	c.t += 1.0 / SampleRate
	c.pop *= 0.9975

	ring := math.Sin(2*math.Pi*c.tone*c.t) * c.pop
	grit := noise * c.pop * 0.6
	return softSat(c.hiss*0.35+ring*0.5+grit) * 0.8
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/supr-growth/vmath"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// wave maps a phase in [0, 1) to an amplitude in [-1, 1]
type wave func(phase float64) float64

func waveFor(w WaveType, noise vmath.Source) wave {
	switch w {
	case WaveSquare:
		return func(p float64) float64 {
			if p < 0.5 {
				return 1
			}
			return -1
		}
	case WaveSaw:
		return func(p float64) float64 { return 2*p - 1 }
	case WaveNoise:
		if noise == nil {
			noise = vmath.NewFastRand(1)
		}
		return func(float64) float64 { return noise.Float64()*2 - 1 }
	default:
		return func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	}
}

// NewOscillator streams a mono wave of freq Hz on both channels for duration
// noise feeds WaveNoise and may be nil
func NewOscillator(freq float64, duration time.Duration, w WaveType, rate beep.SampleRate, noise vmath.Source) beep.Streamer {
	sample := waveFor(w, noise)
	step := freq / float64(rate)
	remaining := rate.N(duration)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), remaining)
		for i := range samples[:n] {
			v := sample(phase)
			samples[i] = [2]float64{v, v}
			phase = math.Mod(phase+step, 1)
		}
		remaining -= n
		return n, n > 0 || remaining > 0
	})
}

// gainCurve is a linear attack, flat sustain, linear release over total samples
type gainCurve struct {
	attack, release, total int
}

func (g gainCurve) at(pos int) float64 {
	switch {
	case pos < g.attack:
		return float64(pos) / float64(g.attack)
	case g.release > 0 && pos >= g.total-g.release:
		return math.Max(0, float64(g.total-pos)/float64(g.release))
	}
	return 1
}

type shaped struct {
	src   beep.Streamer
	curve gainCurve
	pos   int
}

// NewEnvelope applies attack and release ramps to s and cuts it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{
		src:   s,
		curve: gainCurve{attack: rate.N(attack), release: rate.N(release), total: rate.N(duration)},
	}
}

func (e *shaped) Stream(samples [][2]float64) (int, bool) {
	room := e.curve.total - e.pos
	if room <= 0 {
		return 0, false
	}
	if len(samples) > room {
		samples = samples[:room]
	}

	n, ok := e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.curve.at(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.src.Err() }

// newVolume scales a stream linearly; zero or less is silent
// effects.Volume is logarithmic, so Log2(0) would be -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/vmath"
)

// Config is the audio output configuration
type Config struct {
	SampleRate int
	Volume     float64 // master volume in [0, 1]
	Muted      bool
}

// DefaultConfig returns unmuted output at the standard rate
func DefaultConfig() Config {
	return Config{
		SampleRate: constants.AudioSampleRate,
		Volume:     0.6,
	}
}

// note is one tone in a cue
type note struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

// chime plays two overlapping sine partials from the beep tone generators
func chime(rate beep.SampleRate, fund float64) beep.Streamer {
	partial := func(freq, gain float64) beep.Streamer {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return beep.Silence(rate.N(constants.ChimeSoundDuration))
		}
		body := beep.Take(rate.N(constants.ChimeSoundDuration), tone)
		shaped := NewEnvelope(body, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeSoundRelease, rate)
		return newVolume(shaped, gain)
	}
	return beep.Mix(partial(fund, 0.7), partial(fund*2, 0.3))
}

func sequence(rate beep.SampleRate, noise vmath.Source, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate, noise)
		parts = append(parts, NewEnvelope(osc, n.duration, n.attack, n.release, rate))
	}
	return beep.Seq(parts...)
}

// CueStreamer synthesizes the streamer for cue, nil for CueNone or unknown cues
func CueStreamer(cue catalog.Cue, cfg Config, noise vmath.Source) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case catalog.CueSeed:
		// E5
		s = chime(rate, 659.25)
	case catalog.CueCorn:
		// G5
		s = chime(rate, 783.99)
	case catalog.CueCarrot:
		// C6
		s = chime(rate, 1046.50)
	case catalog.CueWater:
		s = beep.Mix(
			newVolume(sequence(rate, noise, note{0, WaveNoise, constants.SplashSoundDuration, constants.SplashSoundAttack, constants.SplashSoundRelease}), 0.4),
			newVolume(sequence(rate, noise, note{330, WaveSine, constants.SplashSoundDuration, constants.SplashSoundAttack, constants.SplashSoundRelease}), 0.6),
		)
	case catalog.CueWorm:
		s = sequence(rate, noise, note{110, WaveSaw, constants.BuzzSoundDuration, constants.BuzzSoundAttack, constants.BuzzSoundRelease})
	case catalog.CueMystery:
		// C6 E6 G6 arpeggio
		s = sequence(rate, noise,
			note{1046.50, WaveSquare, constants.MysteryNote1Duration, constants.MysterySoundAttack, constants.MysterySoundRelease},
			note{1318.51, WaveSquare, constants.MysteryNote2Duration, constants.MysterySoundAttack, constants.MysterySoundRelease},
			note{1567.98, WaveSquare, constants.MysteryNote3Duration, constants.MysterySoundAttack, constants.MysterySoundRelease},
		)
		s = newVolume(s, 0.5)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume)
}

package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Catch cue timing
const (
	ChimeSoundDuration = 180 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 120 * time.Millisecond

	SplashSoundDuration = 250 * time.Millisecond
	SplashSoundAttack   = 20 * time.Millisecond
	SplashSoundRelease  = 180 * time.Millisecond

	BuzzSoundDuration = 400 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 150 * time.Millisecond

	MysteryNote1Duration = 100 * time.Millisecond
	MysteryNote2Duration = 100 * time.Millisecond
	MysteryNote3Duration = 260 * time.Millisecond
	MysterySoundAttack   = 5 * time.Millisecond
	MysterySoundRelease  = 60 * time.Millisecond
)

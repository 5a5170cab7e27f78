package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Volume Settings
const (
	// DefaultSFXVolume is the initial sound effect level (0.0-1.0)
	DefaultSFXVolume = 0.25

	// DefaultMusicVolume is the initial music level (0.0-1.0)
	DefaultMusicVolume = 0.25

	// VolumeStep is the options menu increment, wrapping to 0 past 1.0
	VolumeStep = 0.05
)

// Cue Timing
const (
	// AdvanceCueDuration is the length of the upward sweep played on advance
	AdvanceCueDuration = 180 * time.Millisecond

	// CollisionCueDuration is the length of the crash noise played on game over
	CollisionCueDuration = 450 * time.Millisecond

	// MusicBeat is the period of the background pulse
	MusicBeat = 500 * time.Millisecond
)

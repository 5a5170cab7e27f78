package config

import (
	"math"

	"github.com/lixenwraith/cyber-escape/constants"
)

// Settings holds the volumes adjusted from the options screen
type Settings struct {
	SFXVolume   float64
	MusicVolume float64
}

// NewSettings seeds settings from the loaded config
func NewSettings(cfg AudioConfig) *Settings {
	return &Settings{SFXVolume: cfg.SFXVolume, MusicVolume: cfg.MusicVolume}
}

// CycleSFX steps the effect volume, wrapping to 0 after full
func (s *Settings) CycleSFX() float64 {
	s.SFXVolume = stepVolume(s.SFXVolume)
	return s.SFXVolume
}

// CycleMusic steps the music volume, wrapping to 0 after full
func (s *Settings) CycleMusic() float64 {
	s.MusicVolume = stepVolume(s.MusicVolume)
	return s.MusicVolume
}

// Percent converts a 0..1 level to a whole percentage for display
func Percent(v float64) int {
	return int(math.Round(v * 100))
}

// stepVolume rounds to whole percent so repeated steps land exactly on 1.0
func stepVolume(v float64) float64 {
	if v >= 1 {
		return 0
	}
	next := math.Round((v+constants.VolumeStep)*100) / 100
	return math.Min(next, 1)
}

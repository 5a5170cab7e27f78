package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager owns the speaker mixer, the music loop and cue playback
// Every method is a no-op until Initialize succeeds, so the game runs without audio
type SoundManager struct {
	mu    sync.Mutex
	log   *zap.Logger
	mixer *beep.Mixer

	music       *beep.Ctrl
	musicVolume *effects.Volume

	sfxLevel   float64
	musicLevel float64

	initialized bool
}

// NewSoundManager creates an uninitialized manager at default volumes
func NewSoundManager(log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		log:        log.Named("audio"),
		mixer:      &beep.Mixer{},
		sfxLevel:   constants.DefaultSFXVolume,
		musicLevel: constants.DefaultMusicVolume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup stops all playback; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.musicVolume = nil
	sm.initialized = false
}

// PlayCue plays a one-shot effect; satisfies engine.CueSink
func (sm *SoundManager) PlayCue(cue engine.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.sfxLevel <= 0 {
		return
	}
	s := CueSound(cue, sampleRate, sm.sfxLevel)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.musicVolume = newVolume(newPulse(sampleRate, constants.MusicBeat), sm.musicLevel)
	sm.music = &beep.Ctrl{Streamer: sm.musicVolume}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// SetVolumes applies linear 0..1 levels; the music change is immediate
func (sm *SoundManager) SetVolumes(sfx, music float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.sfxLevel = sfx
	sm.musicLevel = music
	if sm.musicVolume == nil {
		return
	}
	level, silent := volumeLevel(music)
	speaker.Lock()
	sm.musicVolume.Volume = level
	sm.musicVolume.Silent = silent
	speaker.Unlock()
}

// Volumes returns the current linear levels
func (sm *SoundManager) Volumes() (sfx, music float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sfxLevel, sm.musicLevel
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the game's sound cues through a shared mixer.
// Every method is safe before Initialize or after a failed one; the game runs silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager; volume is linear, 0..1
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker teardown; an empty mixer keeps it quiet
	sm.initialized = false
}

// SetVolume changes the level for sounds started afterwards
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(volume)
}

// Volume returns the current linear volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// PlayEat plays the food chirp
func (sm *SoundManager) PlayEat() {
	sm.play(func(vol float64) beep.Streamer { return CreateEatSound(sampleRate, vol) })
}

// PlayCrash plays the game-over buzz
func (sm *SoundManager) PlayCrash() {
	sm.play(func(vol float64) beep.Streamer { return CreateCrashSound(sampleRate, vol) })
}

func (sm *SoundManager) play(build func(vol float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}

	s := build(sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

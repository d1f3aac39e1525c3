package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starglyph/parameter"
)

// SoundManager owns the speaker and mixes one-shot cues
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	active      [soundTypeCount]*beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; disabled configs return ErrAudioDisabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all cues and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for i, ctrl := range sm.active {
		if ctrl != nil {
			ctrl.Paused = true
			sm.active[i] = nil
		}
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// Play starts a cue, cutting off a still-running instance of the same cue
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return nil
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	speaker.Lock()
	if prev := sm.active[st]; prev != nil {
		prev.Paused = true
	}
	sm.active[st] = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	return nil
}

// SetMuted toggles cue playback without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

package audio

import "errors"

// SoundType identifies a synthesized scene cue
type SoundType int

const (
	SoundChime  SoundType = iota // Text finished forming
	SoundRumble                  // Collapse started
	SoundBlast                   // Burst started
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundChime:  "chime",
	SoundRumble: "rumble",
	SoundBlast:  "blast",
}

// String returns the cue name used in the SFX volume map
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrUnknownSound  = errors.New("unknown sound type")
)

package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/starglyph/parameter"
)

// AudioConfig holds cue synthesis settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in cue levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundChime:  0.8,
			SoundRumble: 1.0,
			SoundBlast:  0.7,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("STARGLYPH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 maps to 0.0-1.0
	if volume := os.Getenv("STARGLYPH_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if effectVols := os.Getenv("STARGLYPH_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok && v >= 0 {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("STARGLYPH_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// level returns the final gain for a cue
func (c *AudioConfig) level(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

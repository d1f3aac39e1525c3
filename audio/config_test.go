package audio

import (
	"testing"

	"github.com/lixenwraith/starglyph/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}

	expected := map[SoundType]float64{
		SoundChime:  0.8,
		SoundRumble: 1.0,
		SoundBlast:  0.7,
	}
	for st, want := range expected {
		if got, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		} else if got != want {
			t.Errorf("Expected volume %f for %s, got %f", want, st, got)
		}
	}
}

func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("STARGLYPH_AUDIO_ENABLED", "")
	t.Setenv("STARGLYPH_MASTER_VOLUME", "")
	t.Setenv("STARGLYPH_SFX_VOLUMES", "")
	t.Setenv("STARGLYPH_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", def.Enabled, cfg.Enabled)
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected MasterVolume=%f, got %f", def.MasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", def.SampleRate, cfg.SampleRate)
	}
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("STARGLYPH_AUDIO_ENABLED", tt.value)
			cfg := LoadAudioConfig()
			if cfg.Enabled != tt.expected {
				t.Errorf("Expected Enabled=%v for %q, got %v", tt.expected, tt.value, cfg.Enabled)
			}
		})
	}
}

func TestLoadAudioConfigMasterVolume(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"150", 1.0},
		{"-10", 0.0},
		{"loud", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("STARGLYPH_MASTER_VOLUME", tt.value)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tt.expected {
				t.Errorf("Expected MasterVolume=%f for %q, got %f", tt.expected, tt.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("STARGLYPH_SFX_VOLUMES", `{"chime":0.2,"blast":0,"bogus":3,"rumble":-1}`)

	cfg := LoadAudioConfig()

	if cfg.EffectVolumes[SoundChime] != 0.2 {
		t.Errorf("Expected chime volume 0.2, got %f", cfg.EffectVolumes[SoundChime])
	}
	if cfg.EffectVolumes[SoundBlast] != 0 {
		t.Errorf("Expected blast volume 0, got %f", cfg.EffectVolumes[SoundBlast])
	}
	// Negative volumes are ignored
	if cfg.EffectVolumes[SoundRumble] != 1.0 {
		t.Errorf("Expected rumble volume to stay 1.0, got %f", cfg.EffectVolumes[SoundRumble])
	}
}

func TestLoadAudioConfigInvalidJSON(t *testing.T) {
	t.Setenv("STARGLYPH_SFX_VOLUMES", `{chime:`)

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	for st, want := range def.EffectVolumes {
		if cfg.EffectVolumes[st] != want {
			t.Errorf("Expected %s volume %f after bad JSON, got %f", st, want, cfg.EffectVolumes[st])
		}
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv("STARGLYPH_SAMPLE_RATE", "44100")
	if cfg := LoadAudioConfig(); cfg.SampleRate != 44100 {
		t.Errorf("Expected SampleRate=44100, got %d", cfg.SampleRate)
	}

	t.Setenv("STARGLYPH_SAMPLE_RATE", "-5")
	if cfg := LoadAudioConfig(); cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default SampleRate for negative input, got %d", cfg.SampleRate)
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundRumble.String() != "rumble" {
		t.Errorf("Expected rumble, got %s", SoundRumble.String())
	}
	if SoundType(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(42).String())
	}
}

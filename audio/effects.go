package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch glide
type oscillator struct {
	freq     float64
	glide    float64 // Hz change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping linearly from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(samples) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Centered(2)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.freq += o.glide
		if o.freq < 0 {
			o.freq = 0
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto effects.Volume; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone uses the beep generator, falling back to the local oscillator above Nyquist
func sineTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), sine)
}

// CreateChimeSound is a bright two-partial bell for a completed formation
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ChimeDuration

	// E5 with an octave partial that dies first
	fund := NewEnvelope(sineTone(659.25, d, rate), d, parameter.ChimeAttack, parameter.ChimeFundamentalTail, rate)
	over := NewEnvelope(NewOscillator(1318.51, d, WaveSine, rate), d, parameter.ChimeAttack, parameter.ChimeOvertoneTail, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.level(SoundChime))
}

// CreateRumbleSound is a slow falling drone for the collapse pull
func CreateRumbleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.RumbleDuration

	drone := NewGlide(70, 38, d, WaveSaw, rate)
	hiss := NewOscillator(0, d, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(drone, 0.6),
		newVolume(hiss, 0.12),
	)
	shaped := NewEnvelope(mixed, d, parameter.RumbleAttack, parameter.RumbleRelease, rate)
	return newVolume(shaped, cfg.level(SoundRumble))
}

// CreateBlastSound is a sharp noise burst with a dropping square body
func CreateBlastSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BlastDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	body := NewGlide(220, 40, d, WaveSquare, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(body, 0.25),
	)
	shaped := NewEnvelope(mixed, d, parameter.BlastAttack, parameter.BlastRelease, rate)
	return newVolume(shaped, cfg.level(SoundBlast))
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundRumble:
		return CreateRumbleSound(cfg)
	case SoundBlast:
		return CreateBlastSound(cfg)
	default:
		return nil
	}
}

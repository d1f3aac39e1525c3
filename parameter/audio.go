package parameter

import "time"

// Synthesized cues
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond

	ChimeDuration        = 600 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeFundamentalTail = 550 * time.Millisecond
	ChimeOvertoneTail    = 300 * time.Millisecond

	RumbleDuration = 1800 * time.Millisecond
	RumbleAttack   = 400 * time.Millisecond
	RumbleRelease  = 900 * time.Millisecond

	BlastDuration = 900 * time.Millisecond
	BlastAttack   = 10 * time.Millisecond
	BlastRelease  = 800 * time.Millisecond
)

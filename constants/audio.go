package constants

import "time"

// Eat Sound Timing
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 60 * time.Millisecond
	EatSoundFreq     = 880.0
)

// Crash Sound Timing
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
	CrashSoundFreq     = 110.0
)

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

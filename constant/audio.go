package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume percentage when unset
	AudioDefaultVolume = 50
)

// Resume Blip (rising)
const (
	ResumeBlipDuration  = 90 * time.Millisecond
	ResumeBlipAttack    = 5 * time.Millisecond
	ResumeBlipRelease   = 40 * time.Millisecond
	ResumeBlipStartFreq = 660.0 // Hz, E5
	ResumeBlipEndFreq   = 990.0 // Hz, B5
)

// Pause Blip (falling)
const (
	PauseBlipDuration  = 90 * time.Millisecond
	PauseBlipAttack    = 5 * time.Millisecond
	PauseBlipRelease   = 40 * time.Millisecond
	PauseBlipStartFreq = 990.0
	PauseBlipEndFreq   = 495.0
)

// Reset Chime (two notes)
const (
	ResetChimeNote1Duration = 80 * time.Millisecond
	ResetChimeNote2Duration = 220 * time.Millisecond
	ResetChimeAttack        = 5 * time.Millisecond
	ResetChimeNote1Release  = 40 * time.Millisecond
	ResetChimeNote2Release  = 160 * time.Millisecond
	ResetChimeNote1Freq     = 987.77  // Hz, B5
	ResetChimeNote2Freq     = 1318.51 // Hz, E6
)

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/stopwatch/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a raw wave, gliding linearly from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator whose pitch slides from startFreq to endFreq over duration
func NewGlide(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.startFreq
		if o.duration > 0 {
			freq += (o.endFreq - o.startFreq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope creates an attack/sustain/release envelope
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
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators

// createResumeBlip generates a short rising blip
func createResumeBlip(rate beep.SampleRate) beep.Streamer {
	osc := NewGlide(constant.ResumeBlipStartFreq, constant.ResumeBlipEndFreq, constant.ResumeBlipDuration, WaveSine, rate)
	return NewEnvelope(osc, constant.ResumeBlipDuration, constant.ResumeBlipAttack, constant.ResumeBlipRelease, rate)
}

// createPauseBlip generates a short falling blip
func createPauseBlip(rate beep.SampleRate) beep.Streamer {
	osc := NewGlide(constant.PauseBlipStartFreq, constant.PauseBlipEndFreq, constant.PauseBlipDuration, WaveSine, rate)
	return NewEnvelope(osc, constant.PauseBlipDuration, constant.PauseBlipAttack, constant.PauseBlipRelease, rate)
}

// createResetChime generates a two-note chime
func createResetChime(rate beep.SampleRate) beep.Streamer {
	// First note (B5)
	n1 := NewOscillator(constant.ResetChimeNote1Freq, constant.ResetChimeNote1Duration, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, constant.ResetChimeNote1Duration, constant.ResetChimeAttack, constant.ResetChimeNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(constant.ResetChimeNote2Freq, constant.ResetChimeNote2Duration, WaveTriangle, rate)
	n2Shaped := NewEnvelope(n2, constant.ResetChimeNote2Duration, constant.ResetChimeAttack, constant.ResetChimeNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// CueStreamer returns the streamer for a cue at the given gain, nil for unknown cues
func CueStreamer(cue Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueResume:
		s = createResumeBlip(rate)
	case CuePause:
		s = createPauseBlip(rate)
	case CueReset:
		s = createResetChime(rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/stopwatch/constant"
)

// drain streams s to exhaustion and returns every produced sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer did not terminate")
	return nil
}

// zeroCrossings counts sign changes on the left channel
func zeroCrossings(samples [][2]float64) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
			count++
		}
	}
	return count
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := drain(t, osc)

		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("Wave %d: sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got %v", osc.Err())
		}
	}
}

func TestOscillatorDrainedReturnsFalse(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(t, osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Expected (0, false) after drain, got (%d, %v)", n, ok)
	}
}

func TestGlideDirection(t *testing.T) {
	rate := beep.SampleRate(44100)

	rising := drain(t, NewGlide(300, 1200, 200*time.Millisecond, WaveSine, rate))
	half := len(rising) / 2
	if zeroCrossings(rising[:half]) >= zeroCrossings(rising[half:]) {
		t.Error("Expected rising glide to cross zero more often in its second half")
	}

	falling := drain(t, NewGlide(1200, 300, 200*time.Millisecond, WaveSine, rate))
	half = len(falling) / 2
	if zeroCrossings(falling[:half]) <= zeroCrossings(falling[half:]) {
		t.Error("Expected falling glide to cross zero more often in its first half")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level during sustain, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Expected release to approach zero, got %f", last)
	}
}

func TestCueStreamerLengths(t *testing.T) {
	rate := beep.SampleRate(constant.AudioSampleRate)
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueResume, rate.N(constant.ResumeBlipDuration)},
		{CuePause, rate.N(constant.PauseBlipDuration)},
		{CueReset, rate.N(constant.ResetChimeNote1Duration) + rate.N(constant.ResetChimeNote2Duration)},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := CueStreamer(tt.cue, rate, 0.5)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			samples := drain(t, s)
			if len(samples) != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, len(samples))
			}
			for _, smp := range samples {
				if math.Abs(smp[0]) > 0.5+1e-9 {
					t.Fatalf("Expected gain-limited samples, got %f", smp[0])
				}
			}
		})
	}
}

func TestCueStreamerSilentAtZeroVolume(t *testing.T) {
	samples := drain(t, CueStreamer(CueReset, beep.SampleRate(8000), 0))
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, sample %d = %v", i, s)
		}
	}
}

func TestCueStreamerUnknown(t *testing.T) {
	if s := CueStreamer(cueCount, beep.SampleRate(8000), 1); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestCueString(t *testing.T) {
	if CueResume.String() != "resume" || CuePause.String() != "pause" || CueReset.String() != "reset" {
		t.Error("Unexpected cue names")
	}
	if Cue(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Cue(99).String())
	}
}

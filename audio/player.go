package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/stopwatch/constant"
)

// Player mixes cue sounds into a single speaker stream.
// All methods are no-ops when audio is disabled or the speaker failed to open
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	closed      bool
}

// NewPlayer creates a player; the speaker is not opened until Init
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constant.AudioSampleRate
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts streaming the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized || p.closed {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue; returns immediately
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := CueStreamer(cue, p.rate, p.cfg.Volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// Package audio plays short synthesized tones as sculpting feedback.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Feedback tone shape.
const (
	toneLength   = 45 * time.Millisecond
	toneBaseHz   = 140.0
	toneRangeHz  = 260.0
	minToneLevel = 0.25

	// dbPerDoubling converts decibels to the base-2 exponent effects.Volume takes.
	dbPerDoubling = 6.0206
)

// Manager mixes feedback tones into the speaker.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume   float64
	feedbackVolume float64
	muted          bool

	// Mixer for overlapping tones
	mixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:     DefaultSampleRate,
		masterVolume:   1.0,
		feedbackVolume: 0.5,
		mixer:          &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init(sampleRate int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if sampleRate > 0 {
		m.sampleRate = beep.SampleRate(sampleRate)
	}
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	logger.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetFeedbackVolume sets the feedback tone volume (0.0 to 1.0).
func (m *Manager) SetFeedbackVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedbackVolume = clamp(vol, 0, 1)
}

// SetMuted silences or restores feedback.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetFeedbackVolume returns the feedback volume.
func (m *Manager) GetFeedbackVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.feedbackVolume
}

// IsMuted reports whether feedback is silenced.
func (m *Manager) IsMuted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// volumeToDb converts a 0-1 volume to decibels.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayFeedback mixes in a short tone whose pitch and loudness follow
// intensity (0.0 to 1.0). It does nothing before Init or while muted.
func (m *Manager) PlayFeedback(intensity float64) {
	m.mu.RLock()
	initialized, muted := m.initialized, m.muted
	vol := m.masterVolume * m.feedbackVolume
	m.mu.RUnlock()

	if !initialized || muted || vol <= 0 {
		return
	}

	tone, err := m.Tone(intensity)
	if err != nil {
		logger.Warn("feedback tone", zap.Error(err))
		return
	}

	speaker.Lock()
	m.mixer.Add(tone)
	speaker.Unlock()
}

// Tone builds the feedback voice for intensity at the current volume.
// The returned streamer ends after the tone length.
func (m *Manager) Tone(intensity float64) (beep.Streamer, error) {
	m.mu.RLock()
	sr := m.sampleRate
	vol := m.masterVolume * m.feedbackVolume
	m.mu.RUnlock()

	intensity = clamp(intensity, 0, 1)
	sine, err := generators.SineTone(sr, toneBaseHz+toneRangeHz*intensity)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}

	n := sr.N(toneLength)
	level := vol * (minToneLevel + (1-minToneLevel)*intensity)
	return &effects.Volume{
		Streamer: effects.Transition(beep.Take(n, sine), n, 1, 0, effects.TransitionLinear),
		Base:     2,
		Volume:   volumeToDb(level) / dbPerDoubling,
		Silent:   level <= 0,
	}, nil
}

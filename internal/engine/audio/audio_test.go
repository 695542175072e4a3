package audio

import (
	"math"
	"testing"
)

func TestVolumeConversion(t *testing.T) {
	// Test volume to dB conversion
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Check default volumes
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.GetMasterVolume())
	}
	if m.GetFeedbackVolume() != 0.5 {
		t.Errorf("default feedback volume = %f, want 0.5", m.GetFeedbackVolume())
	}
	if m.IsMuted() {
		t.Error("expected manager to start unmuted")
	}
	if m.IsInitialized() {
		t.Error("expected manager to start uninitialized")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	if m.GetMasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.GetMasterVolume())
	}

	// Test clamping
	m.SetMasterVolume(2.0)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}

	m.SetMasterVolume(-1.0)
	if m.GetMasterVolume() != 0.0 {
		t.Errorf("master volume = %f, want 0.0 (clamped)", m.GetMasterVolume())
	}

	m.SetFeedbackVolume(3)
	if m.GetFeedbackVolume() != 1.0 {
		t.Errorf("feedback volume = %f, want 1.0 (clamped)", m.GetFeedbackVolume())
	}

	m.SetMuted(true)
	if !m.IsMuted() {
		t.Error("expected muted")
	}
}

func TestPlayFeedbackBeforeInit(t *testing.T) {
	m := New()
	// Must not touch the speaker.
	m.PlayFeedback(1)
}

// drain streams s to completion and returns every sample of the left channel.
func drain(t *testing.T, m *Manager, intensity float64) []float64 {
	t.Helper()
	tone, err := m.Tone(intensity)
	if err != nil {
		t.Fatalf("Tone(%f): %v", intensity, err)
	}

	var out []float64
	buf := make([][2]float64, 256)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || n == 0 {
			break
		}
		if len(out) > int(DefaultSampleRate) {
			t.Fatal("tone did not end")
		}
	}
	return out
}

func peak(samples []float64) float64 {
	var p float64
	for _, s := range samples {
		p = math.Max(p, math.Abs(s))
	}
	return p
}

func TestToneLength(t *testing.T) {
	m := New()
	samples := drain(t, m, 0.5)

	want := DefaultSampleRate.N(toneLength)
	if len(samples) != want {
		t.Errorf("tone has %d samples, want %d", len(samples), want)
	}
	if peak(samples) == 0 {
		t.Error("tone is silent")
	}

}

func TestToneFadesOut(t *testing.T) {
	m := New()
	samples := drain(t, m, 1)
	quarter := len(samples) / 4

	head := peak(samples[:quarter])
	tail := peak(samples[len(samples)-quarter:])
	if tail >= head/2 {
		t.Errorf("last quarter peak %f should be well below first quarter peak %f", tail, head)
	}

	last := samples[len(samples)-8:]
	if p := peak(last); p > 0.01 {
		t.Errorf("tone ends at %f, want a click-free ending near zero", p)
	}
}

func TestToneLouderWithIntensity(t *testing.T) {
	m := New()
	soft := peak(drain(t, m, 0))
	loud := peak(drain(t, m, 1))

	if loud <= soft {
		t.Errorf("peak at intensity 1 (%f) should exceed intensity 0 (%f)", loud, soft)
	}
}

func TestToneSilentAtZeroVolume(t *testing.T) {
	m := New()
	m.SetMasterVolume(0)

	if p := peak(drain(t, m, 1)); p != 0 {
		t.Errorf("peak = %f, want silence", p)
	}
}

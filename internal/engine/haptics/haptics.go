// Package haptics drives controller rumble for sculpting feedback.
package haptics

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/logger"
)

// Rumbler is a device that can vibrate. Motor strengths span the full uint16 range.
type Rumbler interface {
	Rumble(low, high uint16, durationMS uint32) error
}

// Options configures a Manager.
type Options struct {
	Enabled  bool
	Strength float32       // 0.0 to 1.0
	Cooldown time.Duration // minimum gap between pulses
}

// Manager rate-limits pulses to a rumble device. A Manager without a
// device does nothing.
type Manager struct {
	mu       sync.Mutex
	device   Rumbler
	opts     Options
	last     time.Time
	now      func() time.Time
	failures int
}

// New creates a manager for device, which may be nil.
func New(device Rumbler, opts Options) *Manager {
	if opts.Strength < 0 {
		opts.Strength = 0
	}
	if opts.Strength > 1 {
		opts.Strength = 1
	}
	return &Manager{device: device, opts: opts, now: time.Now}
}

// Available reports whether pulses reach a device.
func (m *Manager) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.device != nil && m.opts.Enabled
}

// SetEnabled turns rumble on or off.
func (m *Manager) SetEnabled(on bool) {
	m.mu.Lock()
	m.opts.Enabled = on
	m.mu.Unlock()
}

// Pulse vibrates for d. Pulses inside the cooldown window are dropped.
func (m *Manager) Pulse(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device == nil || !m.opts.Enabled || d <= 0 || m.opts.Strength == 0 {
		return
	}
	now := m.now()
	if !m.last.IsZero() && now.Sub(m.last) < m.opts.Cooldown {
		return
	}
	m.last = now

	level := uint16(m.opts.Strength * 0xFFFF)
	// The high-frequency motor gives a crisper tap than the low one.
	if err := m.device.Rumble(level/2, level, uint32(d.Milliseconds())); err != nil {
		m.failures++
		if m.failures == 1 {
			logger.Warn("rumble failed", zap.Error(err))
		}
	}
}

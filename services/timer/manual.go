package timer

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock that only moves when told to. Due callbacks run
// synchronously inside Advance, ordered by deadline and then by the order
// they were scheduled.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualEntry
}

type manualEntry struct {
	at  time.Time
	seq uint64
	t   *task
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Token {
	if d < 0 {
		d = 0
	}
	t := &task{f: f}
	m.mu.Lock()
	e := &manualEntry{at: m.now.Add(d), seq: m.seq, t: t}
	m.seq++
	t.stop = func() bool { return m.remove(e) }
	m.pending = append(m.pending, e)
	m.mu.Unlock()
	return t
}

func (m *Manual) remove(e *manualEntry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.pending {
		if p == e {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by d, firing every callback due on the way,
// including ones scheduled by callbacks that fire during the advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	m.advanceTo(target)
}

// Flush fires callbacks due at the current instant without moving the clock.
func (m *Manual) Flush() { m.Advance(0) }

func (m *Manual) advanceTo(target time.Time) {
	for {
		m.mu.Lock()
		sort.SliceStable(m.pending, func(i, j int) bool {
			a, b := m.pending[i], m.pending[j]
			if !a.at.Equal(b.at) {
				return a.at.Before(b.at)
			}
			return a.seq < b.seq
		})
		if len(m.pending) == 0 || m.pending[0].at.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		e := m.pending[0]
		m.pending = m.pending[1:]
		if e.at.After(m.now) {
			m.now = e.at
		}
		m.mu.Unlock()
		e.t.run()
	}
}

// Pending returns the number of callbacks waiting to fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

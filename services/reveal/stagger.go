// Package reveal staggers the appearance of list items: item i becomes
// visible i*d after Start.
package reveal

import (
	"sort"
	"sync"
	"time"

	"handyhub/services/timer"
)

// Reveal is one run of a staggered reveal. It cannot be restarted.
type Reveal struct {
	timers *timer.Group
	total  int

	mu       sync.Mutex
	visible  map[int]bool
	finished bool
	done     chan struct{}
}

// Start schedules n reveals spaced d apart. onReveal may be nil; it runs on
// the clock's goroutine without any lock held.
func Start(clock timer.Clock, n int, d time.Duration, onReveal func(i int)) *Reveal {
	r := &Reveal{
		timers:  timer.NewGroup(clock),
		total:   n,
		visible: make(map[int]bool, n),
		done:    make(chan struct{}),
	}
	if n <= 0 {
		r.finish()
		return r
	}
	for i := 0; i < n; i++ {
		idx := i
		r.timers.AfterFunc(time.Duration(idx)*d, func() {
			r.mu.Lock()
			if r.finished {
				r.mu.Unlock()
				return
			}
			r.visible[idx] = true
			complete := len(r.visible) == r.total
			r.mu.Unlock()

			if onReveal != nil {
				onReveal(idx)
			}
			if complete {
				r.finish()
			}
		})
	}
	return r
}

// Visible returns the revealed indices in ascending order.
func (r *Reveal) Visible() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.visible))
	for i := range r.visible {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Cancel stops every pending reveal. Already visible items stay visible.
func (r *Reveal) Cancel() {
	r.timers.Close()
	r.finish()
}

// Done is closed once every item is visible or the run is cancelled.
func (r *Reveal) Done() <-chan struct{} { return r.done }

func (r *Reveal) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.finished = true
	close(r.done)
}

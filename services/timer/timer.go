// Package timer is the scheduled-task layer used by every component that
// fakes asynchrony: each delayed callback is scheduled through a Clock and
// handed back as a Token that its owner cancels on teardown.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	statePending int32 = iota
	stateFired
	stateCancelled
)

// Token is returned by every schedule call. Cancel reports whether the
// callback was prevented from running.
type Token interface {
	Cancel() bool
}

// Clock schedules callbacks. Callbacks run on a goroutine owned by the clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Token
}

// task guards a callback so that it runs at most once and never after Cancel.
type task struct {
	state int32
	f     func()
	stop  func() bool
}

func (t *task) run() {
	if atomic.CompareAndSwapInt32(&t.state, statePending, stateFired) {
		t.f()
	}
}

func (t *task) Cancel() bool {
	if !atomic.CompareAndSwapInt32(&t.state, statePending, stateCancelled) {
		return false
	}
	if t.stop != nil {
		t.stop()
	}
	return true
}

// Real is the wall clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Token {
	t := &task{f: f}
	tm := time.AfterFunc(d, t.run)
	t.stop = tm.Stop
	return t
}

// Group owns a set of pending tokens so they can be cancelled together.
// Once closed, new schedules are dropped.
type Group struct {
	clock Clock

	mu     sync.Mutex
	next   uint64
	tokens map[uint64]Token
	closed bool
}

func NewGroup(clock Clock) *Group {
	if clock == nil {
		clock = Real{}
	}
	return &Group{clock: clock, tokens: make(map[uint64]Token)}
}

func (g *Group) Clock() Clock { return g.clock }

// AfterFunc schedules f on the group's clock and tracks the token until it fires.
func (g *Group) AfterFunc(d time.Duration, f func()) Token {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return cancelled{}
	}
	id := g.next
	g.next++
	// Reserve the slot first: a zero-delay real timer may fire before AfterFunc returns.
	g.tokens[id] = nil
	g.mu.Unlock()

	tok := g.clock.AfterFunc(d, func() {
		g.mu.Lock()
		_, live := g.tokens[id]
		delete(g.tokens, id)
		g.mu.Unlock()
		if live {
			f()
		}
	})

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, live := g.tokens[id]; live {
		g.tokens[id] = tok
	} else {
		tok.Cancel()
	}
	return groupToken{g: g, id: id}
}

func (g *Group) cancel(id uint64) bool {
	g.mu.Lock()
	tok, ok := g.tokens[id]
	delete(g.tokens, id)
	g.mu.Unlock()
	if !ok {
		return false
	}
	if tok != nil {
		tok.Cancel()
	}
	return true
}

// Pending is the number of scheduled callbacks that have not fired or been cancelled.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tokens)
}

// CancelAll cancels every pending callback but keeps the group usable.
func (g *Group) CancelAll() {
	g.mu.Lock()
	tokens := g.tokens
	g.tokens = make(map[uint64]Token)
	g.mu.Unlock()
	for _, tok := range tokens {
		if tok != nil {
			tok.Cancel()
		}
	}
}

// Close cancels every pending callback and refuses new ones.
func (g *Group) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.CancelAll()
}

type groupToken struct {
	g  *Group
	id uint64
}

func (t groupToken) Cancel() bool { return t.g.cancel(t.id) }

type cancelled struct{}

func (cancelled) Cancel() bool { return false }

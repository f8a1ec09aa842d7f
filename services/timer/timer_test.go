package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func TestManualFiresInDeadlineThenScheduleOrder(t *testing.T) {
	clock := NewManual(epoch)
	var got []string

	clock.AfterFunc(200*time.Millisecond, func() { got = append(got, "c") })
	clock.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	clock.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })

	clock.Advance(99 * time.Millisecond)
	assert.Empty(t, got)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, epoch.Add(1100*time.Millisecond), clock.Now())
}

func TestManualRunsCallbacksScheduledDuringAdvance(t *testing.T) {
	clock := NewManual(epoch)
	var fired []time.Time

	clock.AfterFunc(time.Second, func() {
		fired = append(fired, clock.Now())
		clock.AfterFunc(time.Second, func() { fired = append(fired, clock.Now()) })
	})

	clock.Advance(5 * time.Second)
	require.Len(t, fired, 2)
	assert.Equal(t, epoch.Add(time.Second), fired[0])
	assert.Equal(t, epoch.Add(2*time.Second), fired[1])
}

func TestCancelPreventsCallback(t *testing.T) {
	clock := NewManual(epoch)
	ran := false
	tok := clock.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, tok.Cancel())
	assert.False(t, tok.Cancel())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Minute)
	assert.False(t, ran)
}

func TestGroupCloseCancelsEverything(t *testing.T) {
	clock := NewManual(epoch)
	g := NewGroup(clock)
	count := 0

	g.AfterFunc(time.Second, func() { count++ })
	g.AfterFunc(2*time.Second, func() { count++ })
	assert.Equal(t, 2, g.Pending())

	g.Close()
	assert.Equal(t, 0, g.Pending())

	g.AfterFunc(0, func() { count++ })
	clock.Advance(time.Minute)
	assert.Zero(t, count)
}

func TestGroupForgetsFiredTokens(t *testing.T) {
	clock := NewManual(epoch)
	g := NewGroup(clock)
	count := 0

	tok := g.AfterFunc(time.Second, func() { count++ })
	clock.Advance(time.Second)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, g.Pending())
	assert.False(t, tok.Cancel())
}

func TestGroupCancelAllKeepsGroupUsable(t *testing.T) {
	clock := NewManual(epoch)
	g := NewGroup(clock)
	count := 0

	g.AfterFunc(time.Second, func() { count += 10 })
	g.CancelAll()
	g.AfterFunc(time.Second, func() { count++ })
	clock.Advance(time.Second)

	assert.Equal(t, 1, count)
}

func TestRealClockFiresAndCancels(t *testing.T) {
	g := NewGroup(Real{})
	var wg sync.WaitGroup
	wg.Add(1)
	g.AfterFunc(0, wg.Done)
	wg.Wait()

	ran := make(chan struct{}, 1)
	tok := g.AfterFunc(time.Hour, func() { ran <- struct{}{} })
	assert.True(t, tok.Cancel())
	assert.Equal(t, 0, g.Pending())
	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	default:
	}
}

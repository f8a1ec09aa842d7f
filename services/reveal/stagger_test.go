package reveal

import (
	"testing"
	"time"

	"handyhub/services/timer"

	"github.com/stretchr/testify/assert"
)

const step = 100 * time.Millisecond

func TestRevealSchedule(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	var order []int
	r := Start(clock, 3, step, func(i int) { order = append(order, i) })

	assert.Empty(t, r.Visible())

	clock.Flush()
	assert.Equal(t, []int{0}, r.Visible())

	clock.Advance(99 * time.Millisecond)
	assert.Equal(t, []int{0}, r.Visible())

	clock.Advance(time.Millisecond)
	assert.Equal(t, []int{0, 1}, r.Visible())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []int{0, 1}, r.Visible())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, []int{0, 1, 2}, r.Visible())
	assert.Equal(t, []int{0, 1, 2}, order)

	select {
	case <-r.Done():
	default:
		t.Fatal("reveal should be done")
	}
}

func TestCancelBeforeFirstReveal(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	r := Start(clock, 3, step, nil)
	r.Cancel()

	clock.Advance(time.Second)
	assert.Empty(t, r.Visible())
	assert.Zero(t, clock.Pending())

	select {
	case <-r.Done():
	default:
		t.Fatal("cancelled reveal should be done")
	}
}

func TestCancelMidway(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	r := Start(clock, 5, step, nil)

	clock.Advance(150 * time.Millisecond)
	r.Cancel()
	clock.Advance(time.Second)

	assert.Equal(t, []int{0, 1}, r.Visible())
}

func TestEmptyList(t *testing.T) {
	r := Start(timer.NewManual(time.Unix(0, 0)), 0, step, nil)
	assert.Empty(t, r.Visible())
	<-r.Done()
}

func TestRealClock(t *testing.T) {
	r := Start(timer.Real{}, 3, time.Millisecond, nil)
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reveal")
	}
	assert.Equal(t, []int{0, 1, 2}, r.Visible())
}

package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)

func TestFixedClock_AdvancesByStep(t *testing.T) {
	c := NewFixedClock(t0, time.Minute)

	assert.Equal(t, t0, c.Now())
	assert.Equal(t, t0.Add(time.Minute), c.Now())
	assert.Equal(t, t0.Add(2*time.Minute), c.Peek())
}

func TestFixedClock_AdvanceAndReset(t *testing.T) {
	c := NewFixedClock(t0, time.Second)

	c.Advance(time.Hour)
	assert.Equal(t, t0.Add(time.Hour), c.Now())

	c.Reset()
	assert.Equal(t, t0, c.Now())
}

func TestFixedClock_ConcurrentAccess(t *testing.T) {
	c := NewFixedClock(t0, time.Nanosecond)

	var wg sync.WaitGroup
	seen := make(chan time.Time, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Now()
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[time.Time]bool{}
	for ts := range seen {
		unique[ts] = true
	}
	assert.Len(t, unique, 100)
	assert.Equal(t, t0.Add(100*time.Nanosecond), c.Peek())
}

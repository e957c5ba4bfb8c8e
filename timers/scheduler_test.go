package timers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerAdvance(t *testing.T) {
	tests := []struct {
		name    string
		delays  []time.Duration
		advance []time.Duration
		want    []int // indices in firing order
	}{
		{
			name:    "fires once due",
			delays:  []time.Duration{100 * time.Millisecond},
			advance: []time.Duration{50 * time.Millisecond, 50 * time.Millisecond},
			want:    []int{0},
		},
		{
			name:    "not yet due",
			delays:  []time.Duration{time.Second},
			advance: []time.Duration{999 * time.Millisecond},
			want:    nil,
		},
		{
			name:    "ordered by due time",
			delays:  []time.Duration{300 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond},
			advance: []time.Duration{time.Second},
			want:    []int{1, 2, 0},
		},
		{
			name:    "ties keep scheduling order",
			delays:  []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 10 * time.Millisecond},
			advance: []time.Duration{10 * time.Millisecond},
			want:    []int{0, 1, 2},
		},
		{
			name:    "negative delay runs on next advance",
			delays:  []time.Duration{-time.Second},
			advance: []time.Duration{0},
			want:    []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			var got []int
			for i, d := range tt.delays {
				s.After(d, func() { got = append(got, i) })
			}
			for _, dt := range tt.advance {
				s.Advance(dt)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := New()
	ran := false
	h := s.After(10*time.Millisecond, func() { ran = true })

	assert.True(t, h.Pending())
	h.Cancel()
	h.Cancel()
	assert.False(t, h.Pending())
	assert.Equal(t, 0, s.Len())

	s.Advance(time.Second)
	assert.False(t, ran)

	var nilHandle *Handle
	assert.NotPanics(t, nilHandle.Cancel)
	assert.False(t, nilHandle.Pending())
}

func TestSchedulerChainedTasks(t *testing.T) {
	s := New()
	var order []string
	s.After(10*time.Millisecond, func() {
		order = append(order, "first")
		s.After(0, func() { order = append(order, "chained") })
		s.After(time.Second, func() { order = append(order, "later") })
	})

	n := s.Advance(20 * time.Millisecond)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "chained"}, order)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 20*time.Millisecond, s.Now())
}

func TestSchedulerClear(t *testing.T) {
	s := New()
	ran := 0
	h := s.After(time.Millisecond, func() { ran++ })
	s.After(time.Millisecond, func() { ran++ })

	s.Clear()
	s.Advance(time.Second)

	assert.Equal(t, 0, ran)
	assert.False(t, h.Pending())
}

func TestHandleFiredIsNotPending(t *testing.T) {
	s := New()
	h := s.After(time.Millisecond, func() {})
	s.Advance(time.Millisecond)
	assert.False(t, h.Pending())
	assert.NotPanics(t, h.Cancel)
}

func TestSchedulerChainedTimingFromDueTime(t *testing.T) {
	s := New()
	var fired []time.Duration
	var step func()
	step = func() {
		fired = append(fired, s.Now())
		if len(fired) < 5 {
			s.After(3*time.Millisecond, step)
		}
	}
	s.After(3*time.Millisecond, step)

	s.Advance(16 * time.Millisecond)
	assert.Equal(t, []time.Duration{
		3 * time.Millisecond,
		6 * time.Millisecond,
		9 * time.Millisecond,
		12 * time.Millisecond,
		15 * time.Millisecond,
	}, fired)
	assert.Equal(t, 16*time.Millisecond, s.Now())
}

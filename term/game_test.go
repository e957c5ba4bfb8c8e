package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

// keySource produces key events forever, or nil once closed is set.
type keySource struct {
	closed bool
}

func (k *keySource) PollEvent() tcell.Event {
	if k.closed {
		return nil
	}
	return tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
}

func TestPumpEventsStopsWhenReaderLeaves(t *testing.T) {
	out := make(chan tcell.Event, 2)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		pumpEvents(&keySource{}, out, stop)
		close(done)
	}()

	// Nobody reads past the buffer; the pump must still exit on stop.
	assert.Eventually(t, func() bool { return len(out) == cap(out) }, time.Second, time.Millisecond)
	close(stop)
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

func TestPumpEventsClosesOutWhenSourceEnds(t *testing.T) {
	out := make(chan tcell.Event, 1)
	pumpEvents(&keySource{closed: true}, out, make(chan struct{}))

	_, ok := <-out
	assert.False(t, ok)
}

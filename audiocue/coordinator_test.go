package audiocue

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/automoto/flowerhop/timers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrack struct {
	playing bool
	started int
	stopped int
	length  time.Duration
	muted   bool
}

func (f *fakeTrack) Play()                   { f.playing = true; f.started++ }
func (f *fakeTrack) Pause()                  { f.playing = false }
func (f *fakeTrack) Resume()                 { f.playing = true }
func (f *fakeTrack) Stop()                   { f.playing = false; f.stopped++ }
func (f *fakeTrack) Duration() time.Duration { return f.length }
func (f *fakeTrack) SetMuted(m bool)         { f.muted = m }

type rig struct {
	sched *timers.Scheduler
	loop  *fakeTrack
	loss  *fakeTrack
	score *fakeTrack
	c     *Coordinator
}

func newRig() *rig {
	r := &rig{
		sched: timers.New(),
		loop:  &fakeTrack{length: 8 * time.Second},
		loss:  &fakeTrack{length: 1500 * time.Millisecond},
		score: &fakeTrack{length: 500 * time.Millisecond},
	}
	r.c = NewCoordinator(r.sched, r.loop, map[CueID]Track{
		CueLoss:      r.loss,
		CueScoreBump: r.score,
	})
	r.c.StartLoop()
	return r
}

func (r *rig) audible() int {
	n := 0
	for _, t := range []*fakeTrack{r.loop, r.loss, r.score} {
		if t.playing {
			n++
		}
	}
	return n
}

func TestPlayForegroundDucksLoop(t *testing.T) {
	r := newRig()
	require.True(t, r.loop.playing)

	r.c.PlayForeground(CueScoreBump)
	assert.False(t, r.loop.playing)
	assert.True(t, r.score.playing)
	assert.Equal(t, CueScoreBump, r.c.Active())
	assert.Equal(t, 1, r.audible())

	r.sched.Advance(499 * time.Millisecond)
	assert.False(t, r.loop.playing)

	r.sched.Advance(time.Millisecond)
	assert.True(t, r.loop.playing)
	assert.Equal(t, CueNone, r.c.Active())
	assert.True(t, r.c.LoopAudible())
}

func TestSupersededCueDoesNotResumeEarly(t *testing.T) {
	r := newRig()

	r.c.PlayForeground(CueScoreBump)
	r.sched.Advance(100 * time.Millisecond)
	r.c.PlayForeground(CueLoss)

	assert.Equal(t, 1, r.score.stopped)
	assert.True(t, r.loss.playing)
	assert.Equal(t, 1, r.audible())

	// The score cue's first resume time passes without effect.
	r.sched.Advance(400 * time.Millisecond)
	assert.False(t, r.loop.playing)
	assert.Equal(t, CueLoss, r.c.Active())

	r.sched.Advance(1100 * time.Millisecond)
	assert.True(t, r.loop.playing)
	assert.Equal(t, CueNone, r.c.Active())
}

func TestSameCueReplayedUsesLatestTimer(t *testing.T) {
	r := newRig()

	r.c.PlayForeground(CueScoreBump)
	r.sched.Advance(300 * time.Millisecond)
	r.c.PlayForeground(CueScoreBump)

	r.sched.Advance(300 * time.Millisecond)
	assert.False(t, r.loop.playing, "first timer must not resume the loop")

	r.sched.Advance(200 * time.Millisecond)
	assert.True(t, r.loop.playing)
	assert.Equal(t, 2, r.score.started)
}

func TestResetCancelsPendingResume(t *testing.T) {
	r := newRig()

	r.c.PlayForeground(CueLoss)
	r.c.Reset()

	assert.True(t, r.loop.playing)
	assert.False(t, r.loss.playing)
	assert.Equal(t, CueNone, r.c.Active())
	assert.Equal(t, 0, r.sched.Len())

	r.c.PlayForeground(CueScoreBump)
	r.sched.Advance(2 * time.Second)
	assert.True(t, r.loop.playing)
	assert.Equal(t, 1, r.audible())
}

func TestExactlyOneAudible(t *testing.T) {
	r := newRig()
	steps := []func(){
		func() { r.c.PlayForeground(CueScoreBump) },
		func() { r.sched.Advance(200 * time.Millisecond) },
		func() { r.c.PlayForeground(CueLoss) },
		func() { r.sched.Advance(time.Second) },
		func() { r.c.PlayForeground(CueScoreBump) },
		func() { r.sched.Advance(time.Second) },
		func() { r.c.Reset() },
		func() { r.c.PlayForeground(CueLoss) },
		func() { r.sched.Advance(3 * time.Second) },
	}
	for i, step := range steps {
		step()
		assert.Equal(t, 1, r.audible(), "step %d", i)
	}
}

func TestMissingTracksAreSilent(t *testing.T) {
	sched := timers.New()
	c := NewCoordinator(sched, nil, map[CueID]Track{CueLoss: nil})
	c.StartLoop()

	assert.NotPanics(t, func() { c.PlayForeground(CueLoss) })
	assert.Equal(t, CueLoss, c.Active())

	sched.Advance(0)
	assert.Equal(t, CueNone, c.Active())
	assert.True(t, c.LoopAudible())
}

func TestPlayForegroundNoneIsIgnored(t *testing.T) {
	r := newRig()
	r.c.PlayForeground(CueNone)
	assert.True(t, r.loop.playing)
	assert.Equal(t, 0, r.sched.Len())
}

func TestSetMuted(t *testing.T) {
	r := newRig()
	r.c.SetMuted(true)
	assert.True(t, r.c.Muted())
	assert.True(t, r.loop.muted)
	assert.True(t, r.loss.muted)
	assert.True(t, r.score.muted)

	r.c.SetMuted(false)
	assert.False(t, r.loop.muted)
}

func TestCoordinatorImportsOnlyTimers(t *testing.T) {
	fset := token.NewFileSet()
	for _, name := range []string{"coordinator.go", "cue.go"} {
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			require.NoError(t, err)
			if strings.HasPrefix(path, "github.com/automoto/flowerhop/") {
				assert.Equal(t, "github.com/automoto/flowerhop/timers", path)
			}
		}
	}
}

func TestCueString(t *testing.T) {
	tests := []struct {
		cue  CueID
		want string
	}{
		{CueNone, "none"},
		{CueLoss, "loss"},
		{CueScoreBump, "score_bump"},
		{CueID(99), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cue.String())
		})
	}
}

// Package audiocue serializes foreground sound cues against a background loop.
// Exactly one of the loop or the active cue is audible at any time.
package audiocue

import (
	"time"

	"github.com/automoto/flowerhop/timers"
)

// Track is a playable sound owned by the coordinator
type Track interface {
	Play() // Start from the beginning
	Pause()
	Resume()
	Stop()
	Duration() time.Duration
}

// Muter is implemented by tracks that can be silenced without losing their position
type Muter interface {
	SetMuted(muted bool)
}

// Silent stands in for a track that failed to load or is not ready yet
type Silent struct{}

func (Silent) Play()                   {}
func (Silent) Pause()                  {}
func (Silent) Resume()                 {}
func (Silent) Stop()                   {}
func (Silent) Duration() time.Duration { return 0 }

// Coordinator owns the background loop and the one-shot cues
type Coordinator struct {
	sched *timers.Scheduler
	loop  Track
	cues  map[CueID]Track

	active      CueID
	gen         uint64
	resume      *timers.Handle
	loopStarted bool
	muted       bool
}

// NewCoordinator creates a coordinator. Nil tracks are replaced with Silent.
func NewCoordinator(sched *timers.Scheduler, loop Track, cues map[CueID]Track) *Coordinator {
	if loop == nil {
		loop = Silent{}
	}
	c := &Coordinator{
		sched: sched,
		loop:  loop,
		cues:  make(map[CueID]Track, len(cues)),
	}
	for id, t := range cues {
		if t != nil {
			c.cues[id] = t
		}
	}
	return c
}

func (c *Coordinator) track(cue CueID) Track {
	if t, ok := c.cues[cue]; ok {
		return t
	}
	return Silent{}
}

// StartLoop begins the background loop. Calling it again has no effect.
func (c *Coordinator) StartLoop() {
	if c.loopStarted {
		return
	}
	c.loopStarted = true
	if c.active == CueNone {
		c.loop.Play()
	}
}

// PlayForeground stops any active cue, pauses the loop and plays cue.
// The loop resumes once cue has run its full duration, unless another
// cue or a reset superseded it first.
func (c *Coordinator) PlayForeground(cue CueID) {
	if cue == CueNone {
		return
	}
	if c.active != CueNone {
		c.track(c.active).Stop()
	}
	c.resume.Cancel()

	c.loop.Pause()
	t := c.track(cue)
	t.Play()

	c.active = cue
	c.gen++
	gen := c.gen
	c.resume = c.sched.After(t.Duration(), func() {
		if c.active != cue || c.gen != gen {
			return
		}
		c.active = CueNone
		c.resume = nil
		if c.loopStarted {
			c.loop.Resume()
		}
	})
}

// Active returns the cue currently ducking the loop, or CueNone.
func (c *Coordinator) Active() CueID {
	return c.active
}

// LoopAudible reports whether the background loop is the sound being heard.
func (c *Coordinator) LoopAudible() bool {
	return c.loopStarted && c.active == CueNone
}

// Reset stops the active cue, drops its pending resume and brings the loop back.
func (c *Coordinator) Reset() {
	if c.active != CueNone {
		c.track(c.active).Stop()
	}
	c.gen++
	c.resume.Cancel()
	c.resume = nil
	c.active = CueNone
	if c.loopStarted {
		c.loop.Resume()
	}
}

// SetMuted silences or restores every track that supports it.
func (c *Coordinator) SetMuted(muted bool) {
	c.muted = muted
	if m, ok := c.loop.(Muter); ok {
		m.SetMuted(muted)
	}
	for _, t := range c.cues {
		if m, ok := t.(Muter); ok {
			m.SetMuted(muted)
		}
	}
}

// Muted reports the last value passed to SetMuted.
func (c *Coordinator) Muted() bool {
	return c.muted
}

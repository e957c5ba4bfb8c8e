package term

import (
	"log"
	"math"
	"time"

	"github.com/automoto/flowerhop/audiocue"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/timers"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sound owns the speaker for the terminal frontend. Every track streams
// through one mixer.
type Sound struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	ready bool
}

// NewSound returns an uninitialized sound output.
func NewSound() *Sound {
	return &Sound{
		rate:  beep.SampleRate(cfg.Audio.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker.
func (s *Sound) Init() error {
	if s.ready {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Close stops every track and releases the speaker.
func (s *Sound) Close() {
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}

// Coordinator builds the loop and cue tracks from the configured tones.
// Without a speaker every track is silent.
func (s *Sound) Coordinator(sched *timers.Scheduler) *audiocue.Coordinator {
	if !s.ready {
		return audiocue.NewCoordinator(sched, nil, nil)
	}

	loop := s.newTrack(cfg.Sound.LoopTone, true, cfg.Audio.DefaultMusicVol)
	cues := make(map[cfg.CueID]audiocue.Track, len(cfg.Sound.CueTones))
	for id, tone := range cfg.Sound.CueTones {
		volume := cfg.Audio.DefaultSFXVol
		if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
			volume *= mult
		}
		cues[id] = s.newTrack(tone, false, volume)
	}
	return audiocue.NewCoordinator(sched, loop, cues)
}

func (s *Sound) newTrack(tone cfg.ToneConfig, loop bool, volume float64) audiocue.Track {
	buffer, err := renderTone(s.rate, tone)
	if err != nil {
		log.Printf("Warning: Could not render tone: %v", err)
		return audiocue.Silent{}
	}
	return &beepTrack{
		mixer:  s.mixer,
		buffer: buffer,
		loop:   loop,
		volume: volume * tone.Volume,
	}
}

// renderTone plays the notes of tone once into a buffer.
func renderTone(rate beep.SampleRate, tone cfg.ToneConfig) (*beep.Buffer, error) {
	buffer := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	notes := make([]beep.Streamer, 0, len(tone.Notes))
	for _, freq := range tone.Notes {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(rate.N(tone.NoteTime), sine))
	}
	buffer.Append(beep.Seq(notes...))
	return buffer, nil
}

// beepTrack plays a rendered buffer through the shared mixer. Each Play
// adds a fresh Ctrl; stopping drops the streamer so the mixer discards it.
type beepTrack struct {
	mixer  *beep.Mixer
	buffer *beep.Buffer
	loop   bool
	volume float64

	ctrl  *beep.Ctrl
	vol   *effects.Volume
	muted bool
}

func (t *beepTrack) Play() {
	speaker.Lock()
	defer speaker.Unlock()

	t.drop()
	var streamer beep.Streamer = t.buffer.Streamer(0, t.buffer.Len())
	if t.loop {
		streamer = beep.Loop(-1, t.buffer.Streamer(0, t.buffer.Len()))
	}
	t.vol = &effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(t.volume), Silent: t.muted || t.volume <= 0}
	t.ctrl = &beep.Ctrl{Streamer: t.vol}
	t.mixer.Add(t.ctrl)
}

func (t *beepTrack) Pause() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Paused = true
	}
}

func (t *beepTrack) Resume() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Paused = false
	}
}

func (t *beepTrack) Stop() {
	speaker.Lock()
	defer speaker.Unlock()
	t.drop()
}

// drop detaches the current Ctrl. Caller holds the speaker lock.
func (t *beepTrack) drop() {
	if t.ctrl == nil {
		return
	}
	t.ctrl.Paused = true
	t.ctrl.Streamer = nil
	t.ctrl = nil
	t.vol = nil
}

func (t *beepTrack) Duration() time.Duration {
	return t.buffer.Format().SampleRate.D(t.buffer.Len())
}

func (t *beepTrack) SetMuted(muted bool) {
	speaker.Lock()
	defer speaker.Unlock()
	t.muted = muted
	if t.vol != nil {
		t.vol.Silent = muted || t.volume <= 0
	}
}

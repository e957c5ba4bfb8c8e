package client

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/audiocue"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/timers"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = NewAudioLoader(globalAudioContext, os.DirFS(cfg.Audio.Dir))
	})
}

// playerTrack adapts an ebiten player to the coordinator's track contract
type playerTrack struct {
	player   *audio.Player
	duration time.Duration
	volume   float64
	muted    bool
}

func newPlayerTrack(player *audio.Player, duration time.Duration, volume float64) *playerTrack {
	player.SetVolume(volume)
	return &playerTrack{player: player, duration: duration, volume: volume}
}

func (t *playerTrack) Play() {
	_ = t.player.SetPosition(0)
	t.player.Play()
}

func (t *playerTrack) Pause()  { t.player.Pause() }
func (t *playerTrack) Resume() { t.player.Play() }

func (t *playerTrack) Stop() {
	t.player.Pause()
	_ = t.player.SetPosition(0)
}

func (t *playerTrack) Duration() time.Duration { return t.duration }

func (t *playerTrack) SetMuted(muted bool) {
	t.muted = muted
	if muted {
		t.player.SetVolume(0)
		return
	}
	t.player.SetVolume(t.volume)
}

// loadTrack opens path from the audio directory, falling back to the
// synthesized tone when the file is missing or cannot be decoded.
func loadTrack(path string, tone cfg.ToneConfig, loop bool, volume float64) audiocue.Track {
	player, length, err := globalAudioLoader.Load(path, loop)
	if err != nil {
		log.Printf("Warning: %v, using synthesized tone", err)
		player, length, err = globalAudioLoader.NewPlayer(assets.SynthesizeTone(cfg.Audio.SampleRate, tone), loop)
		if err != nil {
			log.Printf("Warning: Could not create fallback tone for %s: %v", path, err)
			return audiocue.Silent{}
		}
	}
	return newPlayerTrack(player, length, volume)
}

// NewAudioCoordinator builds the loop and cue tracks on the shared audio context.
func NewAudioCoordinator(sched *timers.Scheduler) *audiocue.Coordinator {
	initGlobalAudio()

	loop := loadTrack(cfg.Sound.LoopPath, cfg.Sound.LoopTone, true, cfg.Audio.DefaultMusicVol)
	cues := make(map[cfg.CueID]audiocue.Track, len(cfg.Sound.CuePaths))
	for id, path := range cfg.Sound.CuePaths {
		volume := cfg.Audio.DefaultSFXVol
		if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
			volume *= mult
		}
		cues[id] = loadTrack(path, cfg.Sound.CueTones[id], false, volume)
	}
	return audiocue.NewCoordinator(sched, loop, cues)
}

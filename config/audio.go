package config

import (
	"time"

	"github.com/automoto/flowerhop/audiocue"
)

// CueID aliases the coordinator's cue names so sound tables can key on them
type CueID = audiocue.CueID

const (
	CueNone      = audiocue.CueNone
	CueLoss      = audiocue.CueLoss
	CueScoreBump = audiocue.CueScoreBump
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Dir             string // Directory searched for audio files at startup
}

// ToneConfig describes a synthesized fallback for a missing audio file
type ToneConfig struct {
	Notes    []float64 // Frequencies in Hz, played in order
	NoteTime time.Duration
	Volume   float64
}

// SoundConfig maps the loop and cues to file paths and fallbacks
type SoundConfig struct {
	LoopPath          string
	CuePaths          map[CueID]string
	VolumeMultipliers map[CueID]float64

	LoopTone ToneConfig
	CueTones map[CueID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		Dir:             "assets",
	}

	Sound = SoundConfig{
		LoopPath: "audio/game_loop.mp3",
		CuePaths: map[CueID]string{
			CueLoss:      "audio/game_lose.mp3",
			CueScoreBump: "audio/game_score_bump.mp3",
		},
		VolumeMultipliers: map[CueID]float64{
			CueLoss: 1.2,
		},

		LoopTone: ToneConfig{
			Notes:    []float64{261.63, 329.63, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23},
			NoteTime: 250 * time.Millisecond,
			Volume:   0.15,
		},
		CueTones: map[CueID]ToneConfig{
			CueLoss: {
				Notes:    []float64{392.00, 329.63, 261.63, 196.00},
				NoteTime: 350 * time.Millisecond,
				Volume:   0.3,
			},
			CueScoreBump: {
				Notes:    []float64{523.25, 659.25, 783.99, 1046.50},
				NoteTime: 120 * time.Millisecond,
				Volume:   0.3,
			},
		},
	}
}

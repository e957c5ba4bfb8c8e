package assets

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/flowerhop/config"
)

// bytesPerSample is 16-bit stereo, the format ebiten's decoders produce
const bytesPerSample = 4

// attackFrames shapes note edges so consecutive notes do not click
const attackFrames = 256

// SynthesizeTone renders the notes of tone as 16-bit little endian stereo PCM.
// It stands in for sound files that are missing from the audio directory.
func SynthesizeTone(sampleRate int, tone cfg.ToneConfig) []byte {
	noteFrames := int(float64(sampleRate) * tone.NoteTime.Seconds())
	if noteFrames <= 0 || len(tone.Notes) == 0 {
		return nil
	}

	out := make([]byte, 0, noteFrames*len(tone.Notes)*bytesPerSample)
	sample := make([]byte, 2)
	for _, freq := range tone.Notes {
		for i := 0; i < noteFrames; i++ {
			env := 1.0
			if i < attackFrames {
				env = float64(i) / attackFrames
			} else if rem := noteFrames - i; rem < attackFrames {
				env = float64(rem) / attackFrames
			}

			v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * tone.Volume * env
			v = math.Max(-1, math.Min(1, v))
			binary.LittleEndian.PutUint16(sample, uint16(int16(v*math.MaxInt16)))

			out = append(out, sample...) // left
			out = append(out, sample...) // right
		}
	}
	return out
}

// PCMDuration converts a 16-bit stereo byte count to playback time.
func PCMDuration(n, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	frames := n / bytesPerSample
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

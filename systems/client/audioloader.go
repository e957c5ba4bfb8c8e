package client

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/flowerhop/assets"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes sound files from a file system into ebiten players
type AudioLoader struct {
	cache   map[string][]byte // Decoded PCM by path
	context *audio.Context
	fsys    fs.FS
}

// NewAudioLoader creates a new audio loader reading from fsys. A nil fsys
// makes every load fail so callers fall back to synthesized tones.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
		fsys:    fsys,
	}
}

// decode reads and decodes path, caching the PCM bytes.
func (l *AudioLoader) decode(path string) ([]byte, error) {
	if cached, ok := l.cache[path]; ok {
		return cached, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("no audio source for %s", path)
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	sampleRate := l.context.SampleRate()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.cache[path] = decoded
	return decoded, nil
}

// Load returns a player for path and the length of one pass through it.
// Looping players repeat forever.
func (l *AudioLoader) Load(path string, loop bool) (*audio.Player, time.Duration, error) {
	pcm, err := l.decode(path)
	if err != nil {
		return nil, 0, err
	}
	return l.NewPlayer(pcm, loop)
}

// NewPlayer wraps already decoded PCM in a player.
func (l *AudioLoader) NewPlayer(pcm []byte, loop bool) (*audio.Player, time.Duration, error) {
	var src io.Reader = bytes.NewReader(pcm)
	if loop {
		src = audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}
	player, err := l.context.NewPlayer(src)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create player: %w", err)
	}
	return player, assets.PCMDuration(len(pcm), l.context.SampleRate()), nil
}

package systems

import (
	"github.com/automoto/flowerhop/audiocue"
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// AttachAudio installs coord as the world's coordinator, applies the mute
// setting and starts the background loop.
func AttachAudio(e *ecs.ECS, coord *audiocue.Coordinator, muted bool) *components.AudioData {
	audioData := GetOrCreateAudio(e)
	audioData.Coordinator = coord
	SetMuted(e, muted)
	coord.StartLoop()
	return audioData
}

// PlayCue routes a foreground cue through the world's coordinator.
func PlayCue(e *ecs.ECS, cue cfg.CueID) {
	GetOrCreateAudio(e).Coordinator.PlayForeground(cue)
}

// ResetAudio stops any foreground cue and brings the loop back.
func ResetAudio(e *ecs.ECS) {
	GetOrCreateAudio(e).Coordinator.Reset()
}

// SetMuted silences or restores all tracks.
func SetMuted(e *ecs.ECS, muted bool) {
	audioData := GetOrCreateAudio(e)
	audioData.Muted = muted
	audioData.Coordinator.SetMuted(muted)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating
// a silent coordinator if none was attached.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	if audioData.Coordinator == nil {
		audioData.Coordinator = audiocue.NewCoordinator(GetScheduler(e), nil, nil)
	}
	return audioData
}

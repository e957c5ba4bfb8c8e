package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles mute and the debug overlay from their keys.
func UpdateSettings(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}

	if GetAction(input, cfg.ActionDebug).JustPressed {
		if entry, ok := components.Settings.First(e.World); ok {
			settings := components.Settings.Get(entry)
			settings.DebugOverlay = !settings.DebugOverlay
		}
	}
}

// ToggleMute flips the mute setting and persists it.
func ToggleMute(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	SetMuted(e, !audioData.Muted)
	SaveRecord(e)
}

package systems

import (
	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePrompt pulses the start prompt until the first press dismisses it.
func UpdatePrompt(e *ecs.ECS) {
	entry, ok := components.Prompt.First(e.World)
	if !ok {
		return
	}
	prompt := components.Prompt.Get(entry)
	if !prompt.Visible {
		return
	}
	if _, session, ok := getSession(e); ok && session.GameOver {
		return
	}

	if GetAction(GetOrCreateInput(e), cfg.ActionPress).JustPressed {
		prompt.Visible = false
		return
	}

	PulsePrompt(prompt)
}

// PulsePrompt moves the scale one step and turns around once it leaves the band.
func PulsePrompt(prompt *components.PromptData) {
	if prompt.Growing {
		prompt.Scale += cfg.UI.PromptStep
	} else {
		prompt.Scale -= cfg.UI.PromptStep
	}
	if prompt.Scale < cfg.UI.PromptMinScale || prompt.Scale > cfg.UI.PromptMaxScale {
		prompt.Growing = !prompt.Growing
	}
}

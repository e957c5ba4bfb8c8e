package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	DebugOverlay bool
}

var Settings = donburi.NewComponentType[SettingsData]()

package components

import "github.com/yohamta/donburi"

type ProgressData struct {
	Distance      int
	NextScoreBump int
	Display       string // Zero padded distance shown in the HUD
	Best          int    // Longest distance across runs, persisted
}

var Progress = donburi.NewComponentType[ProgressData]()

package systems

import (
	"fmt"

	cfg "github.com/automoto/flowerhop/config"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceProgress adds delta meters to the run's distance and plays the
// score cue each time the distance reaches the next threshold. Negative
// deltas are ignored so distance never decreases within a run.
func AdvanceProgress(e *ecs.ECS, delta int) {
	progress, ok := getProgress(e)
	if !ok {
		return
	}
	if delta < 0 {
		delta = 0
	}

	progress.Distance += delta
	progress.Display = FormatDistance(progress.Distance)

	if progress.Distance >= progress.NextScoreBump {
		progress.NextScoreBump += cfg.Score.BumpIncrement
		PlayCue(e, cfg.CueScoreBump)
	}
}

// ResetProgress starts a new run at zero meters.
func ResetProgress(e *ecs.ECS) {
	progress, ok := getProgress(e)
	if !ok {
		return
	}
	progress.Distance = 0
	progress.NextScoreBump = cfg.Score.BumpIncrement
	progress.Display = FormatDistance(0)
}

// RecordBest keeps the longest distance seen. Returns true on a new record.
func RecordBest(e *ecs.ECS) bool {
	progress, ok := getProgress(e)
	if !ok || progress.Distance <= progress.Best {
		return false
	}
	progress.Best = progress.Distance
	return true
}

// FormatDistance renders meters left-padded with zeros, e.g. "00120m".
func FormatDistance(meters int) string {
	return fmt.Sprintf("%0*dm", cfg.UI.DistanceDigits, meters)
}

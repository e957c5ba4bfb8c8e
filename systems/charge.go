package systems

import (
	"time"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/timers"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetChargeTarget moves the player's charge to remaining, clamped to the
// meter's capacity. Animated changes of more than one unit step the visual
// fill toward the new ratio over cfg.Charge.AnimationDuration; any fill
// animation already running is dropped first.
func SetChargeTarget(e *ecs.ECS, player *donburi.Entry, remaining int, animated bool) {
	charge := components.Charge.Get(player)
	remaining = clampInt(remaining, 0, charge.Capacity)

	delta := absInt(charge.Remaining - remaining)
	if delta == 0 {
		return
	}

	charge.Animation.Cancel()
	charge.Animation = nil

	from := charge.Fill
	target := chargeRatio(remaining, charge.Capacity)
	charge.Remaining = remaining

	if delta == 1 || !animated {
		charge.Fill = target
		return
	}

	// The tween runs over step indices, so Set(i) is the fill after step i.
	tw := gween.New(float32(from), float32(target), float32(delta), ease.Linear)
	interval := cfg.Charge.AnimationDuration / time.Duration(delta)
	scheduleChargeStep(GetScheduler(e), player, tw, interval, 1, delta, target)
}

func scheduleChargeStep(sched *timers.Scheduler, player *donburi.Entry, tw *gween.Tween, interval time.Duration, step, steps int, target float64) {
	charge := components.Charge.Get(player)
	charge.Animation = sched.After(interval, func() {
		if !player.Valid() {
			return
		}
		charge := components.Charge.Get(player)
		if step >= steps {
			charge.Fill = target
			charge.Animation = nil
			return
		}
		v, _ := tw.Set(float32(step))
		charge.Fill = clampFloat(float64(v), 0, 1)
		scheduleChargeStep(sched, player, tw, interval, step+1, steps, target)
	})
}

// ChargeAnimating reports whether a fill animation is still running.
func ChargeAnimating(charge *components.ChargeData) bool {
	return charge.Animation.Pending()
}

func chargeRatio(remaining, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return clampFloat(float64(remaining)/float64(capacity), 0, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

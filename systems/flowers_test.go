package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(cx, cy, w, h float64) components.ObjectData {
	o := components.ObjectData{Object: resolv.NewObject(0, 0, w, h)}
	o.SetCenter(cx, cy)
	return o
}

func flowerBodies(xs ...float64) []components.ObjectData {
	bodies := make([]components.ObjectData, len(xs))
	for i, x := range xs {
		bodies[i] = body(x, cfg.Flowers.StartY, cfg.Flowers.Width, cfg.Flowers.Height)
	}
	return bodies
}

func TestRecycleFlowers(t *testing.T) {
	tests := []struct {
		name      string
		xs        []float64
		recycled  []bool
		wantMoved int
	}{
		{"none past threshold", []float64{100, 500, 900}, []bool{false, false, false}, 0},
		{"leftmost recycled", []float64{-101, 300, 700}, []bool{true, false, false}, 1},
		{"threshold itself stays", []float64{-100, 300, 700}, []bool{false, false, false}, 0},
		{"two at once", []float64{-150, -120, 200}, []bool{true, true, false}, 2},
		{"all at once", []float64{-300, -200, -101}, []bool{true, true, true}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies := flowerBodies(tt.xs...)
			moved := RecycleFlowers(rand.New(rand.NewSource(1)), bodies)
			assert.Equal(t, tt.wantMoved, moved)

			for i, b := range bodies {
				if !tt.recycled[i] {
					assert.Equal(t, tt.xs[i], b.CenterX(), "flower %d must not move", i)
					continue
				}
				assert.GreaterOrEqual(t, b.CenterX(), cfg.Flowers.RespawnThreshold+cfg.Flowers.Spacing)
				assert.GreaterOrEqual(t, b.CenterY(), cfg.Flowers.MinHeight)
				assert.LessOrEqual(t, b.CenterY(), cfg.Flowers.MaxHeight)
			}
		})
	}
}

func TestRecycleFlowersBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		xs := make([]float64, cfg.Flowers.Count)
		for j := range xs {
			xs[j] = rng.Float64()*3000 - 600
		}
		bodies := flowerBodies(xs...)
		RecycleFlowers(rng, bodies)

		for j, b := range bodies {
			if xs[j] >= cfg.Flowers.RespawnThreshold {
				require.Equal(t, xs[j], b.CenterX())
				continue
			}
			require.GreaterOrEqual(t, b.CenterX()-cfg.Flowers.RespawnThreshold, cfg.Flowers.Spacing)
			require.GreaterOrEqual(t, b.CenterY(), cfg.Flowers.MinHeight)
			require.LessOrEqual(t, b.CenterY(), cfg.Flowers.MaxHeight)
			for k, other := range bodies {
				if k != j && xs[k] >= cfg.Flowers.RespawnThreshold {
					require.GreaterOrEqual(t, b.CenterX()-other.CenterX(), cfg.Flowers.Spacing,
						"recycled flower lands at least one spacing past the others")
				}
			}
		}
	}
}

func TestRecycledFlowersDoNotStack(t *testing.T) {
	bodies := flowerBodies(-300, -200, -150)
	RecycleFlowers(rand.New(rand.NewSource(5)), bodies)

	assert.GreaterOrEqual(t, bodies[1].CenterX()-bodies[0].CenterX(), cfg.Flowers.Spacing)
	assert.GreaterOrEqual(t, bodies[2].CenterX()-bodies[1].CenterX(), cfg.Flowers.Spacing)
}

func TestIsLanding(t *testing.T) {
	flower := body(500, 350, cfg.Flowers.Width, cfg.Flowers.Height)

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"resting on top", 500, 160, true},
		{"just above threshold", 500, 350 - 151, true},
		{"exactly at threshold", 500, 200, false},
		{"too low", 500, 250, false},
		{"side graze", 500 + 130, 160, false},
		{"near edge", 500 - 129, 160, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := body(tt.px, tt.py, cfg.Player.Width, cfg.Player.Height)
			assert.Equal(t, tt.want, IsLanding(player, flower))
		})
	}
}

func TestResetFlowerLayout(t *testing.T) {
	w := newTestWorld(t)
	SetFlowerSpeed(w.ecs, -cfg.World.Speed)
	for _, f := range w.flowers {
		components.Object.Get(f).SetCenter(-500, 260)
	}

	ResetFlowerLayout(w.ecs, w.course)

	for i, f := range w.flowers {
		obj := components.Object.Get(f)
		assert.Equal(t, w.course.Flowers[i].X, obj.CenterX())
		assert.Equal(t, w.course.Flowers[i].Y, obj.CenterY())
		assert.Equal(t, 0.0, components.Physics.Get(f).SpeedX)
	}
}

func TestUpdateFlowersSkipsGameOver(t *testing.T) {
	w := newTestWorld(t)
	components.Object.Get(w.flowers[0]).SetCenter(-200, 350)
	w.sessionData().GameOver = true

	UpdateFlowers(w.ecs)
	assert.Equal(t, -200.0, components.Object.Get(w.flowers[0]).CenterX())

	w.sessionData().GameOver = false
	UpdateFlowers(w.ecs)
	assert.Greater(t, components.Object.Get(w.flowers[0]).CenterX(), 0.0)
}

package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order follows renderer registration.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second, screen y grows downward)
	ClimbSpeed   float64 // Upward speed while holding with charge left
	DescentSpeed float64 // Constant fall speed once the run has started
	BoostSpeed   float64 // Take-off speed when leaving a flower
	Gravity      float64

	// Boost
	BoostCost     int           // Charge paid in one shot on take-off
	BoostDuration time.Duration // How long the boost velocity owns the body

	// Tilt in degrees; positive is nose-down
	TiltAngle float64

	// Dimensions
	Width  float64
	Height float64
}

// WorldConfig contains scrolling and progress values
type WorldConfig struct {
	Speed           float64 // Flower scroll speed in pixels per second
	DistancePerTick int     // Meters added per airborne tick
	Ceiling         float64 // Highest centre y the player may reach unboosted
	BoostCeiling    float64 // Highest centre y while boosted; the climb stops there
}

// FlowerConfig contains obstacle pool configuration
type FlowerConfig struct {
	Count   int
	Width   float64
	Height  float64
	StartX  float64 // Centre x of slot 0 in the default layout
	StartY  float64 // Centre y of every flower in the default layout
	Spacing float64 // Distance between slots, also the recycle offset step

	// Recycling
	RespawnThreshold float64 // Centre x below which a flower is recycled
	MinSpacingFactor float64 // Fraction of the screen width added on recycle
	MaxSpacingFactor float64
	MinHeight        float64 // Centre y band for recycled flowers
	MaxHeight        float64

	// Landing predicate
	AboveThreshold      float64 // Player centre must be this far above the flower centre
	HorizontalThreshold float64 // Max horizontal offset between centres

	Variants int // Number of flower looks, assigned by slot
}

// ChargeConfig contains the jump charge meter configuration
type ChargeConfig struct {
	Capacity          int
	AnimationDuration time.Duration
}

// ScoreConfig contains scoring thresholds
type ScoreConfig struct {
	BumpIncrement int
}

// PlayAgainConfig holds the hit rectangle of the play again prompt as
// fractions of the screen size. Press coordinates differ between platforms,
// so the test is done in viewport space rather than against the widget.
type PlayAgainConfig struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// UIConfig contains HUD and prompt configuration
type UIConfig struct {
	DistanceDigits int

	Prompt         string
	PromptMinScale float64
	PromptMaxScale float64
	PromptStep     float64

	ChargeBarRightMargin float64
	ChargeBarY           float64
	ChargeBarWidth       float64
	ChargeBarHeight      float64

	SkyTop          color.RGBA
	SkyBottom       color.RGBA
	PromptColor     color.RGBA
	DistanceColor   color.RGBA
	ChargeBgColor   color.RGBA
	ChargeFillColor color.RGBA
	PlayerColor     color.RGBA
	StemColor       color.RGBA
	PetalColors     []color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// TickDuration is the simulated time covered by one update.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool  // Draw collision boxes and landing thresholds
	Seed    int64 // Fixed RNG seed, 0 = time based
	Mute    bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Flowers FlowerConfig
var Charge ChargeConfig
var Score ScoreConfig
var PlayAgain PlayAgainConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 68, A: 255}
	Blue         = color.RGBA{R: 31, G: 118, B: 184, A: 255}
	Green        = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Pink         = color.RGBA{R: 255, G: 120, B: 190, A: 255}
	Purple       = color.RGBA{R: 170, G: 90, B: 230, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		ClimbSpeed:    500,
		DescentSpeed:  500,
		BoostSpeed:    900,
		Gravity:       500,
		BoostCost:     20,
		BoostDuration: 850 * time.Millisecond,
		TiltAngle:     25,
		Width:         86,
		Height:        88,
	}

	World = WorldConfig{
		Speed:           300,
		DistancePerTick: 10,
		Ceiling:         25,
		BoostCeiling:    0,
	}

	Flowers = FlowerConfig{
		Count:               3,
		Width:               200,
		Height:              300,
		StartX:              100,
		StartY:              350,
		Spacing:             400,
		RespawnThreshold:    -100,
		MinSpacingFactor:    1.15,
		MaxSpacingFactor:    1.65,
		MinHeight:           250,
		MaxHeight:           400,
		AboveThreshold:      150,
		HorizontalThreshold: 130,
		Variants:            3,
	}

	Charge = ChargeConfig{
		Capacity:          65,
		AnimationDuration: 500 * time.Millisecond,
	}

	Score = ScoreConfig{
		BumpIncrement: 5000,
	}

	PlayAgain = PlayAgainConfig{
		MinX: 0.3,
		MaxX: 0.7,
		MinY: 0.32,
		MaxY: 0.66,
	}

	UI = UIConfig{
		DistanceDigits: 5,

		Prompt:         "Tap to Jump!",
		PromptMinScale: 0.9,
		PromptMaxScale: 1.15,
		PromptStep:     0.005,

		ChargeBarRightMargin: 25,
		ChargeBarY:           140,
		ChargeBarWidth:       18,
		ChargeBarHeight:      200,

		SkyTop:          color.RGBA{R: 120, G: 190, B: 255, A: 255},
		SkyBottom:       color.RGBA{R: 210, G: 240, B: 255, A: 255},
		PromptColor:     Red,
		DistanceColor:   Blue,
		ChargeBgColor:   color.RGBA{R: 40, G: 40, B: 40, A: 200},
		ChargeFillColor: color.RGBA{R: 255, G: 170, B: 40, A: 255},
		PlayerColor:     color.RGBA{R: 150, G: 100, B: 70, A: 255},
		StemColor:       Green,
		PetalColors:     []color.RGBA{Yellow, Pink, Purple},
	}
}

// PlayerStartY returns the centre y that rests the player on a flower whose
// centre sits at flowerY, sunk a few pixels so the first tick registers the overlap.
func PlayerStartY(flowerY float64) float64 {
	return flowerY - Flowers.Height/2 - Player.Height/2 + 4
}

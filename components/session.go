package components

import (
	"math/rand"

	"github.com/automoto/flowerhop/timers"
	"github.com/yohamta/donburi"
)

// SessionData is the run state shared by every system (singleton component)
type SessionData struct {
	GameOver          bool
	GameOverFirstTime bool // No run has ended yet, the play again prompt is unbuilt
	Runs              int
}

var Session = donburi.NewComponentType[SessionData]()

// PlayAgainData stores the play again prompt state
type PlayAgainData struct {
	Visible bool
	Pressed bool // Press landed inside the prompt and has not been released
	Builds  int  // Times the prompt was constructed
}

var PlayAgain = donburi.NewComponentType[PlayAgainData]()

// PromptData stores the pulsing start prompt
type PromptData struct {
	Text    string
	Visible bool
	Scale   float64
	Growing bool
}

var Prompt = donburi.NewComponentType[PromptData]()

// ClockData owns the scheduler and the random source for one world
type ClockData struct {
	Scheduler *timers.Scheduler
	Rand      *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()

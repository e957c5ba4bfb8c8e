package term

import (
	"log"
	"time"

	"github.com/automoto/flowerhop/audiocue"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems"
	"github.com/automoto/flowerhop/timers"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
)

// Game runs the shared runner world in a terminal.
type Game struct {
	screen tcell.Screen
	ecs    *ecs.ECS
	input  *Input
	sound  *Sound
}

// NewGame opens the terminal and builds the world.
func NewGame(opts systems.WorldOptions) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	g := &Game{
		screen: screen,
		input:  NewInput(cols, rows),
		sound:  NewSound(),
	}

	if !cfg.Debug.Mute {
		if err := g.sound.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Warning: Audio initialization failed: %v", err)
		}
	}

	opts.Input = g.input.Apply
	opts.Audio = func(sched *timers.Scheduler) *audiocue.Coordinator {
		return g.sound.Coordinator(sched)
	}
	g.ecs = systems.NewWorld(opts)

	return g, nil
}

// Run drives one tick per cfg.C.TickDuration until the player quits.
// Events are read on their own goroutine and handled between ticks.
func (g *Game) Run() {
	ticker := time.NewTicker(cfg.C.TickDuration())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	stopCh := make(chan struct{})
	defer close(stopCh)
	go pumpEvents(g.screen, eventChan, stopCh)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				cols, rows := resize.Size()
				g.input.Resize(cols, rows)
				g.screen.Sync()
				continue
			}
			if !g.input.Handle(ev) {
				return
			}

		case <-ticker.C:
			g.ecs.Update()
			Draw(g.screen, g.ecs)
			g.screen.Show()
		}
	}
}

// eventSource is the part of tcell.Screen the event pump reads from
type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards events from src to out until src closes or stop is
// closed. out is closed when src runs dry.
func pumpEvents(src eventSource, out chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(out)
			return
		}

		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

// Close restores the terminal and stops audio.
func (g *Game) Close() {
	g.sound.Close()
	g.screen.Fini()
}

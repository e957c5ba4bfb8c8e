package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems"
	"github.com/automoto/flowerhop/term"
)

func main() {
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "fixed random seed (0 = time based)")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "start with audio muted")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "show player state on the last line")
	logPath := flag.String("log", "", "write warnings to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	course, err := assets.LoadDefaultCourse()
	if err != nil {
		log.Printf("Warning: Could not load course, using default layout: %v", err)
		course = assets.DefaultCourse()
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadRecord()
	if err != nil {
		saved = nil
	}

	game, err := term.NewGame(systems.WorldOptions{
		Course: course,
		Seed:   config.Debug.Seed,
		Muted:  config.Debug.Mute,
		Saved:  saved,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.Close()

	game.Run()
}

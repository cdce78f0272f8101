package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/engine"
	"github.com/lixenwraith/on-tour/event"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/network"
	"github.com/lixenwraith/on-tour/parameter"
	"github.com/lixenwraith/on-tour/render"
	"github.com/lixenwraith/on-tour/status"
)

// runInteractive owns the terminal until the player quits
// Key events are collected between frames; each frame steps once with the latest intent
func runInteractive(w engine.World, keys *input.KeyTable, interval time.Duration, spectators *network.Server, reg *status.Registry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, parameter.InputBufferSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	renderer := render.NewRenderer(screen)
	clock := engine.NewFrameClock(engine.NewTimeProvider())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pending := input.IntentNone
	renderer.Draw(w)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent := keys.Translate(ev.Key(), ev.Rune())
				if intent == input.IntentQuit {
					log.Printf("quit at frame %d", w.Frame)
					return nil
				}
				if intent != input.IntentNone {
					pending = intent
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			var evs []event.GameEvent
			w, evs = engine.Step(w, pending, clock.Tick())
			pending = input.IntentNone

			logEvents(evs)
			w.Report(reg)
			renderer.Draw(w)
			publish(spectators, w)
		}
	}
}

func publish(spectators *network.Server, w engine.World) {
	if spectators == nil {
		return
	}
	if err := spectators.Publish(w.Snapshot()); err != nil {
		log.Printf("publish: %v", err)
	}
}

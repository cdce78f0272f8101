package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/on-tour/engine"
	"github.com/lixenwraith/on-tour/event"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/network"
	"github.com/lixenwraith/on-tour/status"
)

// runHeadless replays a script one intent per frame on a simulated clock
// A quit step ends the replay like the key does interactively
// Events are written to out as JSON lines, followed by a final snapshot
func runHeadless(w engine.World, intents []input.Intent, interval time.Duration, out io.Writer, spectators *network.Server, reg *status.Registry) (engine.World, error) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	frames := engine.NewFrameClock(clock)
	enc := json.NewEncoder(out)

	for _, intent := range intents {
		if w.Phase == engine.PhaseComplete || intent == input.IntentQuit {
			break
		}

		clock.Advance(interval)
		var evs []event.GameEvent
		w, evs = engine.Step(w, intent, frames.Tick())

		logEvents(evs)
		for _, ev := range evs {
			if err := enc.Encode(ev); err != nil {
				return w, fmt.Errorf("write event: %w", err)
			}
		}
		w.Report(reg)
		publish(spectators, w)
	}

	summary := struct {
		Summary engine.Snapshot `json:"summary"`
	}{w.Snapshot()}
	if err := enc.Encode(summary); err != nil {
		return w, fmt.Errorf("write summary: %w", err)
	}
	return w, nil
}

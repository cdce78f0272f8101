package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/on-tour/asset"
	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/course"
	"github.com/lixenwraith/on-tour/engine"
	"github.com/lixenwraith/on-tour/event"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/network"
	"github.com/lixenwraith/on-tour/parameter"
	"github.com/lixenwraith/on-tour/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := LoadConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "on-tour: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	c, err := loadCourse(cfg.CoursePath)
	if err != nil {
		return err
	}

	keys, err := loadKeys(cfg.KeymapPath)
	if err != nil {
		return err
	}

	world, err := engine.NewWorld(c,
		parameter.ScreenWidth-parameter.ViewportMarginX,
		parameter.ScreenHeight-parameter.ViewportMarginY,
	)
	if err != nil {
		return err
	}
	log.Printf("course %q loaded, %d holes", c.Name(), c.Remaining())

	reg := status.NewRegistry()

	var spectators *network.Server
	if cfg.Spectate != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.Spectate
		spectators = network.NewServer(netCfg, reg)
		if err := spectators.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := spectators.Stop(ctx); err != nil {
				log.Printf("%v", err)
			}
		}()
	}

	if cfg.Headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		intents, err := input.ParseScript(cfg.Script)
		if err != nil {
			return err
		}
		_, err = runHeadless(world, intents, cfg.FrameInterval(), os.Stdout, spectators, reg)
		return err
	}

	return runInteractive(world, keys, cfg.FrameInterval(), spectators, reg)
}

// loadCourse reads a manifest from disk, or the embedded course when path is empty
func loadCourse(path string) (course.Course, error) {
	if path == "" {
		return asset.DefaultCourse()
	}
	return course.LoadCourse(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	overrides, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return input.MergeKeyTable(keys, overrides), nil
}

// logEvents writes engine events to the debug log
func logEvents(events []event.GameEvent) {
	for _, ev := range events {
		log.Printf("frame %d %s %+v", ev.Frame, ev.Type, ev.Payload)
	}
}

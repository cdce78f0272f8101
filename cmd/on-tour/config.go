package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/on-tour/parameter"
)

// Config holds runtime settings; environment first, flags override
type Config struct {
	// CoursePath is a course manifest on disk; empty plays the embedded course
	CoursePath string

	// KeymapPath is a TOML keymap merged over the default bindings
	KeymapPath string

	Debug bool

	// Spectate is the spectator listen address; empty disables the server
	Spectate string

	// Headless replays Script without a terminal screen
	Headless bool
	Script   string

	FPS int
}

// defaultScript tees off with the driver and waits for the ball to land
const defaultScript = "start, confirm*3, wait*80, confirm*2, wait*120"

func DefaultConfig() *Config {
	return &Config{
		Script: defaultScript,
		FPS:    int(time.Second / parameter.FrameInterval),
	}
}

// LoadConfig reads ON_TOUR_* environment variables over the defaults
// Unparseable values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ON_TOUR_COURSE"); v != "" {
		cfg.CoursePath = v
	}
	if v := os.Getenv("ON_TOUR_KEYMAP"); v != "" {
		cfg.KeymapPath = v
	}
	if v := os.Getenv("ON_TOUR_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v := os.Getenv("ON_TOUR_SPECTATE"); v != "" {
		cfg.Spectate = v
	}
	if v := os.Getenv("ON_TOUR_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FPS = n
		}
	}

	return cfg
}

// RegisterFlags binds command-line flags to cfg, using its current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.CoursePath, "course", c.CoursePath, "course manifest (TOML); empty uses the built-in course")
	fs.StringVar(&c.KeymapPath, "keymap", c.KeymapPath, "keymap override (TOML)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&c.Spectate, "spectate", c.Spectate, "spectator server address, e.g. 127.0.0.1:7777")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "replay -script without a terminal")
	fs.StringVar(&c.Script, "script", c.Script, "headless intent script, e.g. \"start, confirm*3, wait*40\"")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
}

// FrameInterval is the tick period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

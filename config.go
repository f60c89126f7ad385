package sketchbook

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const EnvPrefix = "SKETCHBOOK_"

type Driver string

const (
	DriverWindow   Driver = "window"
	DriverTerminal Driver = "terminal"
)

// Config holds everything needed to pick, create and run a scene.
type Config struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool

	Scene    string
	Driver   Driver
	TickRate int

	// Seed for the random source of a scene. Zero picks a seed at startup.
	Seed uint64

	// Particles is the number of passive particles spawned by the gravity scene.
	Particles int

	Sound    bool
	Debug    bool
	LogLevel slog.Level

	// LogFile receives log output instead of stderr. The terminal driver
	// discards logs if this is empty.
	LogFile string

	// Profile enables profiling, one of "", "cpu" or "mem".
	Profile string
}

func DefaultConfig() Config {
	return Config{
		Title:     "sketchbook",
		Width:     1280,
		Height:    800,
		Scene:     "gravity",
		Driver:    DriverWindow,
		TickRate:  60,
		Particles: 100,
		LogLevel:  slog.LevelInfo,
	}
}

// LoadConfig builds the configuration from defaults, the optional env file,
// SKETCHBOOK_* environment variables and finally the command line args.
// A missing env file is not an error.
func LoadConfig(envFile string, args []string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.ParseFlags(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields with values from the environment.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	get := func(name string) (string, bool) {
		value, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(value), ok && strings.TrimSpace(value) != ""
	}

	var errs []error

	setString := func(name string, target *string) {
		if value, ok := get(name); ok {
			*target = value
		}
	}

	setInt := func(name string, target *int) {
		if value, ok := get(name); ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("env %s%s: %w", EnvPrefix, name, err))
				return
			}

			*target = parsed
		}
	}

	setBool := func(name string, target *bool) {
		if value, ok := get(name); ok {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("env %s%s: %w", EnvPrefix, name, err))
				return
			}

			*target = parsed
		}
	}

	setString("TITLE", &c.Title)
	setInt("WIDTH", &c.Width)
	setInt("HEIGHT", &c.Height)
	setBool("DISABLE_RESIZE", &c.DisableResize)
	setString("SCENE", &c.Scene)
	setInt("TICK_RATE", &c.TickRate)
	setInt("PARTICLES", &c.Particles)
	setBool("SOUND", &c.Sound)
	setBool("DEBUG", &c.Debug)
	setString("PROFILE", &c.Profile)
	setString("LOG_FILE", &c.LogFile)

	if value, ok := get("DRIVER"); ok {
		c.Driver = Driver(value)
	}

	if value, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("env %sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = seed
		}
	}

	if value, ok := get("LOG_LEVEL"); ok {
		if err := c.LogLevel.UnmarshalText([]byte(value)); err != nil {
			errs = append(errs, fmt.Errorf("env %sLOG_LEVEL: %w", EnvPrefix, err))
		}
	}

	return errors.Join(errs...)
}

// ParseFlags overrides fields with values from the command line.
func (c *Config) ParseFlags(args []string) error {
	flags := flag.NewFlagSet("sketchbook", flag.ContinueOnError)

	flags.StringVar(&c.Title, "title", c.Title, "window title")
	flags.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	flags.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	flags.BoolVar(&c.DisableResize, "no-resize", c.DisableResize, "disable window resizing")
	flags.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	flags.IntVar(&c.TickRate, "tps", c.TickRate, "simulation steps per second")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one at startup")
	flags.IntVar(&c.Particles, "particles", c.Particles, "number of particles in the gravity scene")
	flags.BoolVar(&c.Sound, "sound", c.Sound, "play sounds for simulation events")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "start with the debug overlay enabled")
	flags.StringVar(&c.Profile, "profile", c.Profile, "enable profiling: cpu or mem")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	flags.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")

	driver := string(c.Driver)
	flags.StringVar(&driver, "driver", driver, "output driver: window or terminal")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	c.Driver = Driver(driver)
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Driver {
	case DriverWindow, DriverTerminal:
	default:
		errs = append(errs, fmt.Errorf("invalid driver %q", c.Driver))
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		errs = append(errs, fmt.Errorf("invalid profile mode %q", c.Profile))
	}

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("invalid tick rate %d", c.TickRate))
	}

	if c.Particles < 0 {
		errs = append(errs, fmt.Errorf("invalid particle count %d", c.Particles))
	}

	return errors.Join(errs...)
}

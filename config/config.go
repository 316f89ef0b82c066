package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/logger"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BaseMonitor bool   `yaml:"base_monitor"`
}

type Save struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

type Config struct {
	Window    Window        `yaml:"window"`
	Level     string        `yaml:"level"`
	Debug     bool          `yaml:"debug"`
	HotReload bool          `yaml:"hot_reload"`
	Audio     bool          `yaml:"audio"`
	Log       logger.Config `yaml:"log"`
	Save      Save          `yaml:"save"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "platformer",
			Width:  common.BaseWidth,
			Height: common.BaseHeight,
		},
		Level:     "meadow",
		HotReload: true,
		Audio:     true,
		Log:       logger.DefaultConfig(),
		Save: Save{
			Enabled: true,
			AppName: "platformer",
		},
	}
}

// Load reads path over Default. Fields missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// Parse builds the config from command-line args: the optional -config
// file first, then any flag given explicitly on top of it.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("platformer", flag.ContinueOnError)
	path := fs.String("config", "", "path to a YAML config file")
	level := fs.String("level", "", "level name in levels/ (basename, .yaml optional)")
	debug := fs.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := fs.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	mute := fs.Bool("mute", false, "disable audio")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *level
		case "debug":
			cfg.Debug = *debug
			if *debug {
				cfg.Log = logger.DevelopmentConfig()
			}
		case "m":
			cfg.Window.BaseMonitor = *baseMonitor
		case "mute":
			cfg.Audio = !*mute
		}
	})
	// -log-level wins over the preset -debug switches to.
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Level) == "" {
		errs = append(errs, errors.New("config: level is empty"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height))
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log format %q", c.Log.Format))
	}
	if c.Save.Enabled && strings.TrimSpace(c.Save.AppName) == "" {
		errs = append(errs, errors.New("config: save.app_name is empty"))
	}
	return errors.Join(errs...)
}

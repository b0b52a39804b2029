package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GUI_DEMOS"

// Config is built once at start-up and passed around by value.
type Config struct {
	Log         LogConfig        `mapstructure:"log"`
	ProfileAddr string           `mapstructure:"profile_addr"`
	Window      WindowConfig     `mapstructure:"window"`
	Fonts       FontsConfig      `mapstructure:"fonts"`
	Threads     ThreadsConfig    `mapstructure:"threads"`
	Screenshot  ScreenshotConfig `mapstructure:"screenshot"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// WindowConfig holds the initial size of the main window in points.
type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

type FontsConfig struct {
	// CustomPath replaces the bundled custom font when set.
	CustomPath string `mapstructure:"custom_path"`
}

type ThreadsConfig struct {
	InitialWorkers int           `mapstructure:"initial_workers"`
	FrameInterval  time.Duration `mapstructure:"frame_interval"`
	StallWarning   time.Duration `mapstructure:"stall_warning"`
}

type ScreenshotConfig struct {
	Path   string `mapstructure:"path"`
	Region int    `mapstructure:"region"`
}

// Options controls where Load looks for overrides.
type Options struct {
	// File is an explicit config file. Empty means $GUI_DEMOS_CONFIG, then the user config dir.
	File string
	// Flags maps command-line flags onto config keys, keyed by config key.
	Flags map[string]*pflag.Flag
}

// Load reads configuration from defaults, file, env and flags, in increasing precedence.
// Env var overrides use prefix GUI_DEMOS_.
func Load(opts Options) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	explicit := opts.File != ""
	cfgPath := opts.File
	if cfgPath == "" {
		cfgPath = os.Getenv(envPrefix + "_CONFIG")
		explicit = cfgPath != ""
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "gui-demos"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("profile_addr", "")
	v.SetDefault("window.width", 400)
	v.SetDefault("window.height", 1000)
	v.SetDefault("fonts.custom_path", "")
	v.SetDefault("threads.initial_workers", 2)
	v.SetDefault("threads.frame_interval", "33ms")
	v.SetDefault("threads.stall_warning", "2s")
	v.SetDefault("screenshot.path", "top_left.png")
	v.SetDefault("screenshot.region", 100)
}

// Validate rejects values no demo can run with.
func (c Config) Validate() error {
	switch {
	case c.Threads.InitialWorkers < 0:
		return fmt.Errorf("threads.initial_workers must be >= 0, got %d", c.Threads.InitialWorkers)
	case c.Threads.FrameInterval <= 0:
		return fmt.Errorf("threads.frame_interval must be positive, got %s", c.Threads.FrameInterval)
	case c.Screenshot.Region <= 0:
		return fmt.Errorf("screenshot.region must be positive, got %d", c.Screenshot.Region)
	case c.Screenshot.Path == "":
		return errors.New("screenshot.path must not be empty")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

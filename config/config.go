package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

const (
	envPrefix  = "TIDEBREAK"
	configName = "tidebreak"
)

// Color modes accepted by --color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the resolved shell configuration
type Config struct {
	TickInterval  time.Duration
	MaxFrameDelta float64

	AudioEnabled bool
	Volume       float64

	ColorMode string

	Debug    bool
	LogLevel string
	LogDir   string

	HoldInitial time.Duration
	HoldRepeat  time.Duration

	SceneFile string

	// ConfigFile is the file that was read, empty when running on defaults
	ConfigFile string
}

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"color":        "display.color",
	"audio":        "audio.enabled",
	"volume":       "audio.volume",
	"debug":        "log.debug",
	"log-level":    "log.level",
	"scene":        "scene.file",
	"max-frame-dt": "game.max_frame_dt",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.tick_ms", parameter.FrameUpdateInterval.Milliseconds())
	v.SetDefault("game.max_frame_dt", 0.0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)

	v.SetDefault("display.color", ColorAuto)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("input.hold_ms", parameter.InputRepeatHold.Milliseconds())
	v.SetDefault("input.initial_hold_ms", parameter.InputInitialHold.Milliseconds())

	v.SetDefault("scene.file", "")
}

// NewFlagSet declares the command-line surface
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML config file")
	fs.String("color", ColorAuto, "Color mode: auto, truecolor, 256")
	fs.Bool("audio", true, "Enable sound effects")
	fs.Float64("volume", 0.8, "Master volume in [0, 1]")
	fs.Bool("debug", false, "Write logs to the log directory")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	fs.String("scene", "", "Path to a YAML scene catalog")
	fs.Float64("max-frame-dt", 0, "Cap on a single frame delta in seconds, 0 disables")
	return fs
}

// Load resolves configuration from defaults, file, environment and flags, in rising precedence
// args excludes the program name
func Load(args []string) (*Config, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit, _ := fs.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tidebreak")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		TickInterval:  time.Duration(v.GetInt64("game.tick_ms")) * time.Millisecond,
		MaxFrameDelta: v.GetFloat64("game.max_frame_dt"),
		AudioEnabled:  v.GetBool("audio.enabled"),
		Volume:        v.GetFloat64("audio.volume"),
		ColorMode:     strings.ToLower(v.GetString("display.color")),
		Debug:         v.GetBool("log.debug"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
		LogDir:        v.GetString("log.dir"),
		HoldInitial:   time.Duration(v.GetInt64("input.initial_hold_ms")) * time.Millisecond,
		HoldRepeat:    time.Duration(v.GetInt64("input.hold_ms")) * time.Millisecond,
		SceneFile:     v.GetString("scene.file"),
		ConfigFile:    v.ConfigFileUsed(),
	}
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: game.tick_ms must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	case c.MaxFrameDelta < 0:
		return fmt.Errorf("%w: game.max_frame_dt must not be negative, got %v", ErrInvalidConfig, c.MaxFrameDelta)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalidConfig, c.Volume)
	case c.HoldInitial <= 0 || c.HoldRepeat <= 0:
		return fmt.Errorf("%w: input hold windows must be positive", ErrInvalidConfig)
	case c.LogDir == "" && c.Debug:
		return fmt.Errorf("%w: log.dir is required with debug logging", ErrInvalidConfig)
	}

	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.ColorMode)
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default values for configuration
const (
	DefaultLogFile    = "pong.log"
	DefaultLogLevel   = "info"
	DefaultMaxSize    = 10 // Megabytes
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28 // Days
	DefaultSound      = "assets/sounds/score.wav"
	DefaultColor      = "#ffffff"

	envPrefix = "PONG"
)

// Config holds the application configuration
type Config struct {
	Log    LogConfig
	Audio  AudioConfig
	Render RenderConfig
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string
	Level      logrus.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool
	Sound   string
	Effects bool // Paddle and wall blips
}

// RenderConfig controls drawing.
type RenderConfig struct {
	Color   colorful.Color
	ShowFPS bool
}

// flags maps config keys to command line flags.
var flags = map[string]string{
	"log.file":        "log-file",
	"log.level":       "log-level",
	"log.max-size":    "log-max-size",
	"log.max-backups": "log-max-backups",
	"log.max-age":     "log-max-age",
	"log.compress":    "log-compress",
	"audio.enabled":   "audio",
	"audio.sound":     "sound",
	"audio.effects":   "effects",
	"render.color":    "color",
	"render.show-fps": "fps",
}

// NewFlagSet returns the command line flags understood by ParseArgs.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pong", pflag.ContinueOnError)

	fs.String("config", "", "config file (yaml, toml, json or properties)")
	fs.String("log-file", DefaultLogFile, "log file path")
	fs.String("log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	fs.Int("log-max-size", DefaultMaxSize, "log file size in megabytes before rotation")
	fs.Int("log-max-backups", DefaultMaxBackups, "rotated log files to keep")
	fs.Int("log-max-age", DefaultMaxAge, "days to keep rotated log files")
	fs.Bool("log-compress", false, "gzip rotated log files")
	fs.Bool("audio", true, "enable sound")
	fs.String("sound", DefaultSound, "score sound (wav)")
	fs.Bool("effects", false, "play paddle and wall blips")
	fs.String("color", DefaultColor, "foreground color")
	fs.Bool("fps", false, "show frames per second")

	return fs
}

// ParseArgs parses command line arguments, an optional config file and
// PONG_* environment variables, and returns a validated Config.
func ParseArgs(args []string) (*Config, error) {
	fs := NewFlagSet()
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, name := range flags {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", name)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	var err error

	cfg.Log.File = cast.ToString(v.Get("log.file"))
	if cfg.Log.File == "" {
		return nil, errors.New("log file must not be empty")
	}

	cfg.Log.Level, err = logrus.ParseLevel(cast.ToString(v.Get("log.level")))
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	if cfg.Log.MaxSize, err = positiveInt(v, "log.max-size"); err != nil {
		return nil, err
	}
	if cfg.Log.MaxBackups, err = nonNegativeInt(v, "log.max-backups"); err != nil {
		return nil, err
	}
	if cfg.Log.MaxAge, err = nonNegativeInt(v, "log.max-age"); err != nil {
		return nil, err
	}
	if cfg.Log.Compress, err = cast.ToBoolE(v.Get("log.compress")); err != nil {
		return nil, errors.Wrap(err, "log.compress")
	}

	if cfg.Audio.Enabled, err = cast.ToBoolE(v.Get("audio.enabled")); err != nil {
		return nil, errors.Wrap(err, "audio.enabled")
	}
	if cfg.Audio.Effects, err = cast.ToBoolE(v.Get("audio.effects")); err != nil {
		return nil, errors.Wrap(err, "audio.effects")
	}
	cfg.Audio.Sound = cast.ToString(v.Get("audio.sound"))
	if cfg.Audio.Enabled && cfg.Audio.Sound == "" {
		return nil, errors.New("sound path must be set when audio is enabled")
	}

	cfg.Render.Color, err = colorful.Hex(cast.ToString(v.Get("render.color")))
	if err != nil {
		return nil, errors.Wrap(err, "render.color")
	}
	if cfg.Render.ShowFPS, err = cast.ToBoolE(v.Get("render.show-fps")); err != nil {
		return nil, errors.Wrap(err, "render.show-fps")
	}

	return cfg, nil
}

func positiveInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", key, n)
	}
	return n, nil
}

func nonNegativeInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, n)
	}
	return n, nil
}

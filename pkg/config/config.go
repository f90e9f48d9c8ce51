// Package config reads the viewer and server settings from defaults, an
// optional config file, SGFTERM_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultBoardSize = 19
	MaxBoardSize     = 19
	MaxSpeed         = 8
	DefaultInterval  = time.Second
	DefaultLogPath   = "./sgfterm.log"
	DefaultTheme     = "basic"
	EnvPrefix        = "SGFTERM"

	DefaultListen      = ":2222"
	DefaultIdleTimeout = 5 * time.Minute
	DefaultServerLog   = "./sgfterm-server.log"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Path      string        `mapstructure:"-"`
	LogPath   string        `mapstructure:"log"`
	BoardSize int           `mapstructure:"size"`
	Loop      bool          `mapstructure:"loop"`
	AutoPlay  bool          `mapstructure:"autoplay"`
	Interval  time.Duration `mapstructure:"interval"`
	Speed     int           `mapstructure:"speed"`
	Rotation  int           `mapstructure:"rotation"`
	Theme     string        `mapstructure:"theme"`
	ThemeFile string        `mapstructure:"themes"`
	Print     bool          `mapstructure:"print"`
	Move      int           `mapstructure:"move"`
}

type ServerConfig struct {
	Listen      string        `mapstructure:"listen"`
	HostKey     string        `mapstructure:"host-key"`
	Binary      string        `mapstructure:"binary"`
	Path        string        `mapstructure:"path"`
	IdleTimeout time.Duration `mapstructure:"idle-timeout"`
	LogPath     string        `mapstructure:"log"`
	SessionLogs string        `mapstructure:"session-logs"`
}

// Load parses the viewer command line. The first positional argument is the
// record file or folder.
func Load(fs afero.Fs, args []string) (*Config, error) {
	flags := pflag.NewFlagSet("sgfterm", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("log", DefaultLogPath, "path to log file")
	flags.Int("size", DefaultBoardSize, "board size used when a record has no SZ")
	flags.Bool("loop", true, "return to the first move after the last one")
	flags.Bool("autoplay", true, "start playing automatically")
	flags.Duration("interval", DefaultInterval, "delay between moves at speed 1")
	flags.Int("speed", 1, fmt.Sprintf("playback speed, 1 to %d", MaxSpeed))
	flags.Int("rotation", 0, "quarter turns applied to the board")
	flags.String("theme", DefaultTheme, "theme name")
	flags.String("themes", "", "path to a JSON file with extra themes")
	flags.Bool("print", false, "print the board instead of starting the viewer")
	flags.Int("move", -1, "move to print with --print, -1 for the last")

	v, err := newViper(fs, flags, args)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Path = flags.Arg(0)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadServer parses the ssh server command line.
func LoadServer(fs afero.Fs, args []string) (*ServerConfig, error) {
	hostKey := ""
	if home, err := os.UserHomeDir(); err == nil {
		hostKey = filepath.Join(home, ".ssh", "id_rsa")
	}

	flags := pflag.NewFlagSet("sgfterm-server", pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("listen", DefaultListen, "ssh listen address")
	flags.String("host-key", hostKey, "ssh host key file")
	flags.String("binary", "sgfterm", "path to the sgfterm viewer")
	flags.String("path", "", "record file or folder shown to every session")
	flags.Duration("idle-timeout", DefaultIdleTimeout, "close idle sessions after this long")
	flags.String("log", DefaultServerLog, "path to log file")
	flags.String("session-logs", "", "folder for one viewer log per session, empty to discard them")

	v, err := newViper(fs, flags, args)
	if err != nil {
		return nil, err
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Listen == "" {
		return nil, fmt.Errorf("%w: listen address is required", ErrInvalid)
	}
	if cfg.HostKey == "" {
		return nil, fmt.Errorf("%w: host key is required", ErrInvalid)
	}
	return &cfg, nil
}

func newViper(fs afero.Fs, flags *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return v, nil
}

func (c *Config) validate() error {
	if c.BoardSize < 1 || c.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d is outside 1-%d", ErrInvalid, c.BoardSize, MaxBoardSize)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalid)
	}
	c.Speed = ClampSpeed(c.Speed)
	return nil
}

func ClampSpeed(speed int) int {
	if speed < 1 {
		return 1
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Package config holds the settings of the gnr tooling: where the registry
// store lives, how the logger writes and how strict the codec is about
// versions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/gnr/internal/core/observability/log"
)

const (
	EnvPrefix = "GNR"

	defaultStateDir = "~/.local/state/gridworks/gnr"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Database Database `mapstructure:"database" yaml:"database" toml:"database"`
	Log      Log      `mapstructure:"log" yaml:"log" toml:"log"`
	Codec    Codec    `mapstructure:"codec" yaml:"codec" toml:"codec"`
	Cache    Cache    `mapstructure:"cache" yaml:"cache" toml:"cache"`
}

type Database struct {
	// Path of the SQLite file. ":memory:" keeps everything in process.
	Path string `mapstructure:"path" yaml:"path" toml:"path" validate:"required"`
	// Echo logs every statement at debug level.
	Echo bool `mapstructure:"echo" yaml:"echo" toml:"echo"`
}

type Log struct {
	Level   string `mapstructure:"level" yaml:"level" toml:"level" validate:"required"`
	Dir     string `mapstructure:"dir" yaml:"dir" toml:"dir"`
	Console bool   `mapstructure:"console" yaml:"console" toml:"console"`
}

type Codec struct {
	// StrictVersions rejects unrecognized versions instead of falling back.
	StrictVersions bool `mapstructure:"strict_versions" yaml:"strict_versions" toml:"strict_versions"`
}

type Cache struct {
	TTL             time.Duration `mapstructure:"ttl" yaml:"ttl" toml:"ttl" validate:"gte=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval" toml:"cleanup_interval" validate:"gte=0"`
}

func Defaults() Config {
	return Config{
		Database: Database{
			Path: filepath.Join(defaultStateDir, "registry.db"),
		},
		Log: Log{
			Level:   log.LevelInfo.String(),
			Console: true,
		},
		Cache: Cache{
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
	}
}

// Load reads a YAML or TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Defaults()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromViper binds defaults and GNR_* environment overrides to v and decodes
// the merged view. A config file, if any, must already be set on v.
func FromViper(v *viper.Viper) (Config, error) {
	d := Defaults()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.echo", d.Database.Echo)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("log.console", d.Log.Console)
	v.SetDefault("codec.strict_versions", d.Codec.StrictVersions)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogOptions converts the log section for log.NewWithOptions.
func (c Config) LogOptions() log.Options {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Options{
		Level:   level,
		Dir:     c.Log.Dir,
		Console: c.Log.Console,
	}
}

// WriteDefault writes a commented default config. The format follows the
// file extension.
func WriteDefault(path string) error {
	var body string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body = defaultYAML
	case ".toml":
		body = defaultTOML
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

const defaultYAML = `# gnr configuration

database:
  # SQLite file; ":memory:" for a throwaway store
  path: ~/.local/state/gridworks/gnr/registry.db
  echo: false

log:
  # debug | info | warn | error | fatal | none
  level: info
  # when set, logs are also written to <dir>/gnr.log
  dir: ""
  console: true

codec:
  # reject unknown versions instead of falling back to the current one
  strict_versions: false

cache:
  ttl: 5m
  cleanup_interval: 10m
`

const defaultTOML = `# gnr configuration

[database]
# SQLite file; ":memory:" for a throwaway store
path = "~/.local/state/gridworks/gnr/registry.db"
echo = false

[log]
# debug | info | warn | error | fatal | none
level = "info"
# when set, logs are also written to <dir>/gnr.log
dir = ""
console = true

[codec]
# reject unknown versions instead of falling back to the current one
strict_versions = false

[cache]
ttl = "5m"
cleanup_interval = "10m"
`

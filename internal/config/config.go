package config

import (
	"flag"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	EnvFormat   = "HTMLCAT_FORMAT"
	EnvLogLevel = "HTMLCAT_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is what htmlcat runs with. Tags empty means the whole catalog.
type Config struct {
	Format   Format   `toml:"format"`
	LogLevel string   `toml:"log_level"`
	Tags     []string `toml:"tags"`
}

func Default() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// Load applies, in increasing priority: defaults, the TOML file named by
// -config, environment variables, then the remaining flags. A flag only
// counts when it is given; -v wins over -log-level. Positional arguments
// replace the configured tags.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	var (
		path    = fs.String("config", "", "path to a TOML config file")
		format  = fs.String("format", "", "output format: text, json or yaml")
		level   = fs.String("log-level", "", "logrus level")
		verbose = fs.Bool("v", false, "shorthand for -log-level debug")
	)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if *path != "" {
		if err := LoadFile(cfg, *path); err != nil {
			return nil, err
		}
	}
	loadEnv(cfg)

	// Only flags given on the command line override, even when set to "".
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = Format(*format)
		case "log-level":
			if !*verbose {
				cfg.LogLevel = *level
			}
		case "v":
			if *verbose {
				cfg.LogLevel = logrus.DebugLevel.String()
			}
		}
	})
	if fs.NArg() > 0 {
		cfg.Tags = fs.Args()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over cfg. Keys the file does not set keep
// their current value; unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "load config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Wrapf(ErrInvalid, "%s: unknown key %s", path, undecoded[0])
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = Format(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func (c *Config) Validate() error {
	c.Format = Format(strings.ToLower(string(c.Format)))
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalid, "format %q", c.Format)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log level %q", c.LogLevel)
	}
	return nil
}

// Level is the parsed LogLevel. It must only be called after Validate.
func (c *Config) Level() logrus.Level {
	lvl, _ := logrus.ParseLevel(c.LogLevel)
	return lvl
}

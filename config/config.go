// Package config resolves the titrate run parameters from defaults, an
// optional TOML file and TITRATE_* environment variables, using viper.
//
// Precedence (lowest to highest): defaults < file < environment < flags.
// Flags are bound by the CLI with BindPFlag.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/titrate/acid"
	"github.com/katalvlaran/titrate/render"
)

const (
	// EnvPrefix is the environment variable prefix (TITRATE_ACID_PI, ...).
	EnvPrefix = "TITRATE"
	// FileName is the config file looked up in the working directory.
	FileName = "titrate.toml"
	// StdoutPath selects standard output as the image destination.
	StdoutPath = "-"
)

// ErrInvalidConfig indicates a value that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	Acid   AcidConfig   `mapstructure:"acid" json:"acid" yaml:"acid" toml:"acid"`
	Output OutputConfig `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// AcidConfig describes the triprotic acid.
type AcidConfig struct {
	Name string    `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	PKa  []float64 `mapstructure:"pka" json:"pka" yaml:"pka" toml:"pka"`
	PI   float64   `mapstructure:"pi" json:"pi" yaml:"pi" toml:"pi"`
}

// OutputConfig describes the rendered image.
type OutputConfig struct {
	Path   string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`
	Width  int    `mapstructure:"width" json:"width" yaml:"width" toml:"width"`
	Height int    `mapstructure:"height" json:"height" yaml:"height" toml:"height"`
}

// LogConfig selects the log encoding.
type LogConfig struct {
	JSON bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("acid.name", render.DefaultSubject)
	v.SetDefault("acid.pka", []float64{acid.HistidinePKa1, acid.HistidinePKa2, acid.HistidinePKa3})
	v.SetDefault("acid.pi", acid.HistidinePI)

	v.SetDefault("output.path", "titration.png")
	v.SetDefault("output.format", render.FormatPNG.String())
	v.SetDefault("output.width", render.DefaultWidth)
	v.SetDefault("output.height", render.DefaultHeight)

	v.SetDefault("log.json", false)
}

// New returns a viper instance with defaults and environment binding, merged
// with configFile when given, else with ./titrate.toml when present.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", configFile)
		}
		return v, nil
	}

	if _, err := os.Stat(FileName); err == nil {
		v.SetConfigFile(FileName)
		v.SetConfigType("toml")
		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", FileName)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the output settings. Acid parameters are validated by
// NewAcid so that they map to acid.ErrInvalidParameter.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(errors.WithSecondaryError(ErrInvalidConfig, err), "output.format=%q", c.Output.Format)
	}
	if c.Output.Width < 1 || c.Output.Height < 1 {
		return errors.Wrapf(ErrInvalidConfig, "output size %dx%d", c.Output.Width, c.Output.Height)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.Wrap(ErrInvalidConfig, "output.path is empty")
	}
	if strings.TrimSpace(c.Acid.Name) == "" {
		return errors.Wrap(ErrInvalidConfig, "acid.name is empty")
	}

	return nil
}

// NewAcid builds the acid described by the configuration.
func (c *Config) NewAcid() (*acid.Acid, error) {
	return acid.New(c.Acid.PKa, c.Acid.PI)
}

// Format returns the parsed output format.
func (c *Config) Format() (render.Format, error) {
	return render.ParseFormat(c.Output.Format)
}

// RenderOptions translates the output settings into render options.
func (c *Config) RenderOptions() ([]render.Option, error) {
	f, err := c.Format()
	if err != nil {
		return nil, errors.WithSecondaryError(ErrInvalidConfig, err)
	}

	return []render.Option{
		render.WithSize(c.Output.Width, c.Output.Height),
		render.WithFormat(f),
		render.WithSubject(c.Acid.Name),
	}, nil
}

// ToStdout reports whether the image goes to standard output.
func (c *Config) ToStdout() bool {
	return c.Output.Path == StdoutPath
}

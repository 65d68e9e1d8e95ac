// Package config loads the solver configuration from flags, environment
// variables (BAYRELOC_*) and an optional config file, then validates it.
//
// Precedence, highest first: explicitly set flag, environment, config file,
// flag default.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/corridor"
	"github.com/katalvlaran/bayreloc/search"
)

// EnvPrefix prefixes every environment override, e.g. BAYRELOC_TIME_LIMIT.
const EnvPrefix = "BAYRELOC"

// Config is the full solver configuration.
type Config struct {
	TimeLimit        time.Duration `mapstructure:"time_limit"          validate:"gt=0"`
	Width            int           `mapstructure:"width"               validate:"width"`
	CapMode          string        `mapstructure:"cap_mode"            validate:"oneof=constant variable c C nc NC 0 1"`
	Height           int           `mapstructure:"height"              validate:"gt=0"`
	Seed             int64         `mapstructure:"seed"`
	Workers          int           `mapstructure:"workers"             validate:"gte=1"`
	MaxTrajectories  int           `mapstructure:"max_trajectories"    validate:"gte=0"`
	StopAtLowerBound bool          `mapstructure:"stop_at_lower_bound"`
	ResultFile       string        `mapstructure:"result_file"`
	PathFile         string        `mapstructure:"path_file"`
	MetricsFile      string        `mapstructure:"metrics_file"`
	JSON             bool          `mapstructure:"json"`
	Log              LogConfig     `mapstructure:"log"`
}

// LogConfig configures the process logger and its optional rotating file.
type LogConfig struct {
	Level      string `mapstructure:"level"       validate:"oneof=trace debug info warn warning error"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"    validate:"gte=0"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"time-limit":          "time_limit",
	"width":               "width",
	"cap-mode":            "cap_mode",
	"height":              "height",
	"seed":                "seed",
	"workers":             "workers",
	"max-trajectories":    "max_trajectories",
	"stop-at-lower-bound": "stop_at_lower_bound",
	"result-file":         "result_file",
	"path-file":           "path_file",
	"metrics-file":        "metrics_file",
	"json":                "json",
	"log-level":           "log.level",
	"log-file":            "log.file",
}

// RegisterFlags adds the solver flags to fs. Short names follow the classic
// command line: -t time, -d width, -n height, -c cap mode.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.DurationP("time-limit", "t", search.DefaultTimeLimit, "wall-clock budget per instance")
	fs.IntP("width", "d", corridor.FullWidth, "corridor width (-1 or the stack count for all stacks)")
	fs.StringP("cap-mode", "c", "constant", "height cap mode: constant or variable")
	fs.IntP("height", "n", 0, "maximum height (constant) or free slots per stack (variable)")
	fs.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	fs.Int("workers", search.DefaultWorkers, "concurrent trajectory loops per instance")
	fs.Int("max-trajectories", 0, "stop after this many trajectories (0 = no limit)")
	fs.Bool("stop-at-lower-bound", false, "stop once the plan meets the lower bound")
	fs.String("result-file", "", "append one result line per instance to this file")
	fs.String("path-file", "", "write the best path to this file")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile")
	fs.Bool("json", false, "print a JSON summary instead of the result line")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "", "also log to this file, rotated")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("time_limit", search.DefaultTimeLimit)
	v.SetDefault("width", corridor.FullWidth)
	v.SetDefault("cap_mode", "constant")
	v.SetDefault("height", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("workers", search.DefaultWorkers)
	v.SetDefault("max_trajectories", 0)
	v.SetDefault("stop_at_lower_bound", false)
	v.SetDefault("result_file", "")
	v.SetDefault("path_file", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Load builds the configuration. fs may be nil; path may be empty.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// -1 selects the full corridor; anything else must be a positive count.
	_ = v.RegisterValidation("width", func(fl validator.FieldLevel) bool {
		w := fl.Field().Int()
		return w == int64(corridor.FullWidth) || w >= 1
	})
	return v
}

// Validate checks field ranges. Checks that need the instance (width against
// the stack count, caps against initial heights) happen in search.NewEngine.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// SearchOptions maps the configuration onto search options.
func (c *Config) SearchOptions() ([]search.Option, error) {
	mode, err := bay.ParseCapMode(c.CapMode)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	opts := []search.Option{
		search.WithTimeLimit(c.TimeLimit),
		search.WithWidth(c.Width),
		search.WithSeed(c.Seed),
		search.WithWorkers(c.Workers),
		search.WithMaxTrajectories(c.MaxTrajectories),
	}
	if mode == bay.VariableCap {
		opts = append(opts, search.WithVariableCap(c.Height))
	} else {
		opts = append(opts, search.WithConstantCap(c.Height))
	}
	if c.StopAtLowerBound {
		opts = append(opts, search.WithStopAtLowerBound())
	}
	return opts, nil
}

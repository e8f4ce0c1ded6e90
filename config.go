package tabular

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxProblems     = 100
	DefaultMinGrowth       = 64
	DefaultInitialCapacity = 128
)

// Config holds the read-only settings shared by builders and problem
// aggregators.  A Config must not be modified once it has been handed to
// an aggregator or builder.
type Config struct {
	// MaxProblems bounds the number of distinct problems an aggregator
	// records.  Further distinct problems are only counted.
	MaxProblems int `yaml:"max_problems"`
	// MinGrowth is the minimum number of slots added when a builder grows.
	MinGrowth int `yaml:"min_growth"`
	// InitialCapacity is used when a builder is created with capacity 0.
	InitialCapacity int `yaml:"initial_capacity"`
}

func DefaultConfig() Config {
	return Config{
		MaxProblems:     DefaultMaxProblems,
		MinGrowth:       DefaultMinGrowth,
		InitialCapacity: DefaultInitialCapacity,
	}
}

// ParseConfig decodes a YAML config.  Fields absent from b keep their
// default values.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var err error
	if c.MaxProblems < 1 {
		err = multierr.Append(err, fmt.Errorf("max_problems must be positive (got %d)", c.MaxProblems))
	}
	if c.MinGrowth < 1 {
		err = multierr.Append(err, fmt.Errorf("min_growth must be positive (got %d)", c.MinGrowth))
	}
	if c.InitialCapacity < 0 {
		err = multierr.Append(err, errors.New("initial_capacity must not be negative"))
	}
	return err
}

// SetFlags registers flags for c on fs.  The -config flag loads a YAML file
// and later flags on the command line override its values.
func (c *Config) SetFlags(fs *flag.FlagSet) {
	*c = DefaultConfig()
	fs.Func("config", "path of tabular yaml config file", func(s string) error {
		b, err := os.ReadFile(s)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(b, c)
	})
	fs.IntVar(&c.MaxProblems, "maxproblems", c.MaxProblems, "maximum number of distinct problems recorded per aggregator")
	fs.IntVar(&c.MinGrowth, "mingrowth", c.MinGrowth, "minimum number of slots added when a builder grows")
	fs.IntVar(&c.InitialCapacity, "initcap", c.InitialCapacity, "initial builder capacity when none is given")
}

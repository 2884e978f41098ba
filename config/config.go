package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/smallken/geometric-bodies/body"
)

const (
	UnsupportedKind = "unsupported body kind"

	DefaultPrecision = 4
	MaxPrecision     = 15
)

type BodyConfig struct {
	Kind       string    `yaml:"kind"`
	Dimensions []float64 `yaml:"dimensions"`
	// Owned bodies are allocated on their own and released by the dispatcher.
	Owned bool `yaml:"owned"`
}

type Config struct {
	Precision *int         `yaml:"precision"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// Default is the demonstration set: two borrowed bodies followed by two
// owned ones.
func Default() *Config {
	precision := DefaultPrecision
	return &Config{
		Precision: &precision,
		Bodies: []BodyConfig{
			{Kind: body.KindSphere, Dimensions: []float64{5.0}},
			{Kind: body.KindPyramid, Dimensions: []float64{4.0, 6.0, 3.0}},
			{Kind: body.KindSphere, Dimensions: []float64{1.5}, Owned: true},
			{Kind: body.KindPyramid, Dimensions: []float64{10.0, 10.0, 5.0}, Owned: true},
		},
	}
}

// New loads the YAML file at path. An empty path yields Default.
func New(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	conf := new(Config)
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	defaults := Default()
	if conf.Precision == nil {
		conf.Precision = defaults.Precision
	}
	if len(conf.Bodies) == 0 {
		conf.Bodies = defaults.Bodies
	}
	return conf, nil
}

func (c *Config) GetPrecision() int {
	if c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

func (c *Config) SetPrecision(p int) {
	c.Precision = &p
}

func (c *Config) Validate() error {
	if p := c.GetPrecision(); p < 0 || p > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, p)
	}
	if len(c.Bodies) == 0 {
		return errors.New("no bodies configured")
	}
	for i, b := range c.Bodies {
		if b.Kind == "" {
			return fmt.Errorf("body %d: kind is required", i)
		}
	}
	return nil
}

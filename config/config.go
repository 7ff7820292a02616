// Package config holds the inputs of the tour and the runtime knobs of the
// CLI. Every field has a default that reproduces the canonical transcript, so
// a YAML file only needs the values it wants to change.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Person seeds the record-construction step.
type Person struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

// Inputs are the fixed values each demo step operates on.
type Inputs struct {
	Value     int `yaml:"value"`
	Threshold int `yaml:"threshold"`
	Day       int `yaml:"day"`

	ForLimit     int `yaml:"for_limit"`
	WhileLimit   int `yaml:"while_limit"`
	DoWhileLimit int `yaml:"do_while_limit"`

	// Numbers must hold exactly five elements; it backs a [5]int array.
	Numbers  []int  `yaml:"numbers"`
	Operands [2]int `yaml:"operands"`
	Person   Person `yaml:"person"`

	List []string       `yaml:"list"`
	Set  []int          `yaml:"set"`
	Map  map[string]int `yaml:"map"`

	Square   int    `yaml:"square"`
	Dividend int    `yaml:"dividend"`
	Divisor  int    `yaml:"divisor"`
	Level    string `yaml:"level"`
}

// Runtime controls how the tour is run, not what it prints.
type Runtime struct {
	// Banners prints a section heading before each step.
	Banners bool `yaml:"banners"`

	// Wait drains the background executor before the process exits, making
	// the fire-and-forget line deterministic.
	Wait bool `yaml:"wait"`

	Workers         int           `yaml:"workers"`
	QueueSize       int           `yaml:"queue_size"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Config is the root document.
type Config struct {
	Inputs  Inputs  `yaml:"inputs"`
	Runtime Runtime `yaml:"runtime"`
}

// Default returns the configuration of the canonical tour.
func Default() Config {
	return Config{
		Inputs: Inputs{
			Value:        100000,
			Threshold:    50,
			Day:          2,
			ForLimit:     5,
			WhileLimit:   3,
			DoWhileLimit: 2,
			Numbers:      []int{1, 2, 3, 4, 5},
			Operands:     [2]int{3, 4},
			Person:       Person{Name: "Alice", Age: 25},
			List:         []string{"A", "B"},
			Set:          []int{1, 2},
			Map:          map[string]int{"Alice": 25},
			Square:       5,
			Dividend:     10,
			Divisor:      0,
			Level:        "HIGH",
		},
		Runtime: Runtime{
			Workers:         1,
			QueueSize:       1,
			ShutdownTimeout: 2 * time.Second,
		},
	}
}

// Load reads a YAML file. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default(). Unknown keys are
// rejected so typos surface instead of being silently ignored.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// yaml.v3 merges into a non-nil map; a document's map must replace the
	// default the way its slices do.
	cfg.Inputs.Map = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if cfg.Inputs.Map == nil {
		cfg.Inputs.Map = Default().Inputs.Map
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills zero-valued runtime knobs; inputs are left alone since
// zero is a meaningful demo value.
func (c Config) withDefaults() Config {
	out := c
	if out.Runtime.Workers <= 0 {
		out.Runtime.Workers = 1
	}
	if out.Runtime.QueueSize < 0 {
		out.Runtime.QueueSize = 0
	}
	if out.Runtime.ShutdownTimeout <= 0 {
		out.Runtime.ShutdownTimeout = 2 * time.Second
	}
	return out
}

// Validate reports the first field that cannot drive the tour.
func (c Config) Validate() error {
	in := c.Inputs
	switch {
	case len(in.Numbers) != 5:
		return fmt.Errorf("%w: inputs.numbers must have 5 elements, got %d", ErrInvalid, len(in.Numbers))
	case in.ForLimit < 0 || in.WhileLimit < 0 || in.DoWhileLimit < 0:
		return fmt.Errorf("%w: loop limits must not be negative", ErrInvalid)
	case strings.TrimSpace(in.Person.Name) == "":
		return fmt.Errorf("%w: inputs.person.name is empty", ErrInvalid)
	case in.Person.Age < 0:
		return fmt.Errorf("%w: inputs.person.age is negative", ErrInvalid)
	case !knownLevel(in.Level):
		return fmt.Errorf("%w: inputs.level %q is not one of LOW, MEDIUM, HIGH", ErrInvalid, in.Level)
	}
	return nil
}

func knownLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW", "MEDIUM", "HIGH":
		return true
	}
	return false
}

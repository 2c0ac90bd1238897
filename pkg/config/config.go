package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/boristopalov/curbside/pkg/core"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLocations = 20
	DefaultPItem     = 0.6
	DefaultPContam   = 0.25
	DefaultPMiss     = 0.1
)

var ErrInvalidLocations = errors.New("num_locations must be > 0")

type SimulationConfig struct {
	Name      string  `yaml:"name"`
	Locations int     `yaml:"locations"`
	Day       string  `yaml:"day"`
	Seed      *int64  `yaml:"seed,omitempty"`
	PItem     float64 `yaml:"p_item"`
	PContam   float64 `yaml:"p_contam"`
	PMiss     float64 `yaml:"p_miss"`
	// MaxSteps bounds the step loop. Zero means two steps per location.
	MaxSteps int `yaml:"max_steps"`
}

func Default() SimulationConfig {
	return SimulationConfig{
		Name:      "kennedy_street",
		Locations: DefaultLocations,
		Day:       "garbage",
		PItem:     DefaultPItem,
		PContam:   DefaultPContam,
		PMiss:     DefaultPMiss,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (SimulationConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays CURBSIDE_* environment variables onto base
func FromEnv(base SimulationConfig) (SimulationConfig, error) {
	cfg := base
	if v := os.Getenv("CURBSIDE_DAY"); v != "" {
		cfg.Day = v
	}

	for _, f := range []struct {
		key string
		dst *int
	}{
		{"CURBSIDE_LOCATIONS", &cfg.Locations},
		{"CURBSIDE_MAX_STEPS", &cfg.MaxSteps},
	} {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"CURBSIDE_P_ITEM", &cfg.PItem},
		{"CURBSIDE_P_CONTAM", &cfg.PContam},
		{"CURBSIDE_P_MISS", &cfg.PMiss},
	} {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = p
	}

	if v := os.Getenv("CURBSIDE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return base, fmt.Errorf("CURBSIDE_SEED: %w", err)
		}
		cfg.Seed = &seed
	}
	return cfg, nil
}

// Validate rejects configurations that can never run. Probabilities
// outside [0,1] are accepted with a warning: a draw succeeds when it is
// below p, so p <= 0 never fires and p >= 1 always does.
func (c SimulationConfig) Validate() error {
	if c.Locations <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLocations, c.Locations)
	}
	if _, err := core.ParseCollectionDay(c.Day); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		p    float64
	}{
		{"p_item", c.PItem},
		{"p_contam", c.PContam},
		{"p_miss", c.PMiss},
	} {
		if f.p < 0 || f.p > 1 {
			log.Printf("Warning: %s=%v is outside [0,1]", f.name, f.p)
		}
	}
	return nil
}

// CollectionDay returns the parsed day. Call Validate first.
func (c SimulationConfig) CollectionDay() core.CollectionDay {
	d, _ := core.ParseCollectionDay(c.Day)
	return d
}

// StepBudget returns the explicit bound on the step loop
func (c SimulationConfig) StepBudget() int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return DefaultMaxSteps(c.Locations)
}

// DefaultMaxSteps allows one collect and one move per location, which is
// enough for a run without misses to reach its terminal move.
func DefaultMaxSteps(locations int) int {
	return 2 * locations
}

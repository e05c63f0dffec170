/*
Package game
File: state.go
Description:
    Handles the initialization logic: reading 'colony.yaml', filling in
    defaults, and turning a ColonyConfig into a ready-to-run Colony.
*/

package game

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied when 'colony.yaml' leaves a value unset.
const (
	DefaultAddr = ":8081"
	DefaultFood = 2
)

// DefaultConfig is the game started when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Colony: ColonyConfig{
			Food:    DefaultFood,
			Layout:  LayoutConfig{Kind: "test"},
			Assault: AssaultConfig{Preset: "test"},
		},
	}
}

// LoadConfig reads the YAML file at path and applies defaults.
func LoadConfig(path string) (Config, error) {
	// 1. Read the YAML file
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read %s", path)
	}

	// 2. Unmarshal on top of the defaults
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", path)
	}

	// 3. Validate the pieces we can check before building a colony
	if _, err := cfg.Colony.Layout.Build(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Colony.Assault.Build(); err != nil {
		return Config{}, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	return cfg, nil
}

// Build returns the layout this config describes.
func (lc LayoutConfig) Build() (Layout, error) {
	tunnels, length, moat := lc.Tunnels, lc.Length, 0
	switch lc.Kind {
	case "", "test":
		if tunnels == 0 {
			tunnels = 1
		}
	case "test_multi":
		if tunnels == 0 {
			tunnels = 2
		}
	case "dry":
		if tunnels == 0 {
			tunnels = 3
		}
	case "mixed":
		if tunnels == 0 {
			tunnels = 3
		}
		moat = lc.MoatFrequency
		if moat == 0 {
			moat = DefaultMoatFrequency
		}
	default:
		return nil, errors.Errorf("unknown layout kind %q", lc.Kind)
	}
	if length == 0 {
		length = DefaultTunnelLength
	}
	if tunnels < 0 || length < 0 || moat < 0 {
		return nil, errors.Errorf("layout %q: negative dimensions", lc.Kind)
	}
	return MixedLayout(tunnels, length, moat), nil
}

// Build returns a fresh schedule. Explicit waves win over the preset.
func (ac AssaultConfig) Build() (*AssaultSchedule, error) {
	if ac.AttackerArmor < 0 {
		return nil, errors.Errorf("invalid attacker armor %d", ac.AttackerArmor)
	}

	var s *AssaultSchedule
	if len(ac.Waves) > 0 {
		armor := ac.AttackerArmor
		if armor == 0 {
			armor = DefaultAttackerArmor
		}
		s = NewAssaultSchedule(armor)
		if ac.AttackerWaterSafe != nil && !*ac.AttackerWaterSafe {
			s.Grounded()
		}
		for _, w := range ac.Waves {
			if w.Turn < 0 || w.Count < 0 {
				return nil, errors.Errorf("invalid wave turn=%d count=%d", w.Turn, w.Count)
			}
			s.AddWave(w.Turn, w.Count)
		}
		return s, nil
	}

	switch ac.Preset {
	case "", "test":
		s = TestAssault()
	case "full":
		s = FullAssault()
	case "insane":
		s = InsaneAssault()
	case "none":
		s = NewAssaultSchedule(DefaultAttackerArmor)
	default:
		return nil, errors.Errorf("unknown assault preset %q", ac.Preset)
	}
	if ac.AttackerWaterSafe != nil && !*ac.AttackerWaterSafe {
		for a := range s.AllAttackers() {
			a.waterSafe = false
		}
	}
	return s, nil
}

// BuildColony creates a colony from cfg. A zero seed seeds from the clock.
func BuildColony(cfg ColonyConfig, strategy Strategy, opts ...Option) (*Colony, error) {
	layout, err := cfg.Layout.Build()
	if err != nil {
		return nil, err
	}
	schedule, err := cfg.Assault.Build()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, opts...)
	return NewColony(strategy, schedule, layout, cfg.Food, opts...)
}

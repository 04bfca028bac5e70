package config

import (
	"belot/internal/util"
	"belot/pkg/belot"
	"belot/pkg/policy"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the belot runner
type Config struct {
	loaded bool
	// Seed seeds shuffling, bidding and the random policy. 0 picks a fresh seed
	Seed     int64    `yaml:"seed" envconfig:"seed"`
	Rounds   int      `yaml:"rounds" envconfig:"rounds"`
	Rules    string   `yaml:"rules" envconfig:"rules"`
	Deal     string   `yaml:"deal" envconfig:"deal"`
	Policies []string `yaml:"policies" envconfig:"policies"`
	Log      struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		Rounds:   1,
		Rules:    belot.RulesTsakane.String(),
		Deal:     belot.DealTwoStage.String(),
		Policies: []string{"heuristic", "random", "heuristic", "random"},
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration from the file named by BELOT_CONFIG_FILE (default config.yaml),
// then apply BELOT_* environment overrides. A missing file leaves the defaults in place
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BELOT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("belot", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that can't be checked by decoding
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}

	if c.Seed < 0 {
		return fmt.Errorf("seed cannot be < 0")
	}

	if _, err := c.Options(); err != nil {
		return err
	}

	if len(c.Policies) != belot.Seats {
		return fmt.Errorf("expected %d policies, got %d", belot.Seats, len(c.Policies))
	}

	for _, name := range c.Policies {
		if !isPolicy(name) {
			return fmt.Errorf("unknown policy %q, expected one of %s", name, strings.Join(policy.Names, ", "))
		}
	}

	return nil
}

// Options returns the round options described by the config
func (c Config) Options() (belot.Options, error) {
	opts := belot.DefaultOptions()

	rules, err := belot.ParseRuleSet(c.Rules)
	if err != nil {
		return opts, err
	}

	deal, err := belot.ParseDealMode(c.Deal)
	if err != nil {
		return opts, err
	}

	opts.Rules = rules
	opts.Deal = deal
	return opts, nil
}

func isPolicy(name string) bool {
	for _, known := range policy.Names {
		if strings.EqualFold(name, known) {
			return true
		}
	}

	return false
}

package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultsFile is the optional per-directory defaults file.
const DefaultsFile = "scmctl.yaml"

// Defaults are run defaults loadable from scmctl.yaml, so repeated runs
// against the same controller don't need the positionals every time.
// The password deliberately has no place here.
type Defaults struct {
	Controller   string `mapstructure:"controller"`
	Organization string `mapstructure:"organization"`
	Username     string `mapstructure:"username"`
}

// LoadDefaults reads and parses a defaults file.
func LoadDefaults(path string) (*Defaults, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var d Defaults
	if err := mapstructure.Decode(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}
	return &d, nil
}

// FindDefaults loads DefaultsFile from the working directory when present;
// absence is not an error.
func FindDefaults() (*Defaults, error) {
	if _, err := os.Stat(DefaultsFile); err != nil {
		return &Defaults{}, nil
	}
	return LoadDefaults(DefaultsFile)
}

// Apply fills empty Config fields from the defaults.
func (d *Defaults) Apply(c *Config) {
	if c.Controller == "" {
		c.Controller = d.Controller
	}
	if c.Organization == "" {
		c.Organization = d.Organization
	}
	if c.Username == "" {
		c.Username = d.Username
	}
}
